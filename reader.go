package slidetree

import (
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
)

// maxPartSize is the maximum allowed size of a single part.
// 50 MB is generous for any legitimate slide, layout or master part.
const maxPartSize = 50 << 20

// readPartRoot parses one part from r and returns its root element.
func readPartRoot(r io.Reader) (*etree.Element, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxPartSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read part: %w", err)
	}
	if len(data) > maxPartSize {
		return nil, fmt.Errorf("%w (%d bytes)", ErrPartTooLarge, maxPartSize)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse part: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: document is empty", ErrUnexpectedRoot)
	}
	return root, nil
}

// ReadSlideMaster parses a slide master part (ppt/slideMasters/slideMasterN.xml).
func ReadSlideMaster(r io.Reader, opts ...Option) (*SlideMaster, error) {
	root, err := readPartRoot(r)
	if err != nil {
		return nil, err
	}
	return NewSlideMaster(root, opts...)
}

// ReadSlideLayout parses a slide layout part and links it to master.
func ReadSlideLayout(r io.Reader, master *SlideMaster, opts ...Option) (*SlideLayout, error) {
	root, err := readPartRoot(r)
	if err != nil {
		return nil, err
	}
	return NewSlideLayout(root, master, opts...)
}

// ReadSlide parses a slide part and links it to layout.
func ReadSlide(r io.Reader, layout *SlideLayout, opts ...Option) (*Slide, error) {
	root, err := readPartRoot(r)
	if err != nil {
		return nil, err
	}
	return NewSlide(root, layout, opts...)
}

// ReadPart parses a slide, layout or master part, choosing the kind from its
// root element. The part is not linked to any other part.
func ReadPart(r io.Reader, opts ...Option) (Part, error) {
	root, err := readPartRoot(r)
	if err != nil {
		return nil, err
	}
	var p Part
	switch {
	case isTag(root, "p:sld"):
		p, err = NewSlide(root, nil, opts...)
	case isTag(root, "p:sldLayout"):
		p, err = NewSlideLayout(root, nil, opts...)
	case isTag(root, "p:sldMaster"):
		p, err = NewSlideMaster(root, opts...)
	default:
		return nil, fmt.Errorf("%w: %s is not a slide, layout or master", ErrUnexpectedRoot, root.FullTag())
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// OpenPart reads a part from disk. This is a convenience wrapper around ReadPart.
func OpenPart(path string, opts ...Option) (Part, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return ReadPart(f, opts...)
}
