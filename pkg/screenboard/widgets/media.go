package widgets

import (
	"screenboard-client/pkg/errs"
)

// Image embeds a picture by url.
type Image struct {
	Frame
	URL    string `json:"url"`
	Sizing string `json:"sizing,omitempty"`
}

func NewImage(x, y, width, height int, url string) (*Image, error) {
	if url == "" {
		return nil, errs.NewInvalidArgument("url")
	}
	return &Image{
		Frame: newFrame(ImageType, x, y, width, height),
		URL:   url,
	}, nil
}

// IFrame embeds an external page by url.
type IFrame struct {
	Frame
	URL string `json:"url"`
}

func NewIFrame(x, y, width, height int, url string) (*IFrame, error) {
	if url == "" {
		return nil, errs.NewInvalidArgument("url")
	}
	return &IFrame{
		Frame: newFrame(IFrameType, x, y, width, height),
		URL:   url,
	}, nil
}
