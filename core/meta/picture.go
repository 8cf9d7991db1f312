package meta

import (
	"github.com/bogem/id3v2"
)

// mp3FrontCover scans the APIC frames of an MP3 and returns the front cover
// as a data URI, or the first embedded picture when no frame is marked as
// front cover. Returns nil when the file has no usable picture frames.
func mp3FrontCover(path string) *string {
	id3Tag, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: []string{"Attached picture"}})
	if err != nil {
		return nil
	}
	defer id3Tag.Close()

	frames := id3Tag.GetFrames(id3Tag.CommonID("Attached picture"))
	if len(frames) == 0 {
		return nil
	}

	var first *id3v2.PictureFrame
	for i := range frames {
		pf, ok := frames[i].(id3v2.PictureFrame)
		if !ok {
			continue
		}
		if pf.PictureType == id3v2.PTFrontCover {
			return dataURI(pf.MimeType, pf.Picture)
		}
		if first == nil {
			first = &pf
		}
	}
	if first == nil {
		return nil
	}
	return dataURI(first.MimeType, first.Picture)
}
