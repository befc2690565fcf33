package rhll

import (
	"io"

	"github.com/pkg/errors"
)

// Dump writes the sketch to w as one byte holding b followed by the m
// raw register bytes. The protected snapshot is not part of the format;
// it is cheap to rebuild with Protect after a restore.
func (s *Sketch) Dump(w io.Writer) error {
	if _, err := w.Write([]byte{s.b}); err != nil {
		return errors.Wrap(err, "dump bit width")
	}
	if _, err := w.Write(s.registers); err != nil {
		return errors.Wrap(err, "dump registers")
	}
	return nil
}

// Restore replaces s with the sketch encoded in r, reshaping it if the
// stream was dumped with a different bit width. The receiver is left
// untouched unless the whole stream is read and validated successfully.
func (s *Sketch) Restore(r io.Reader) error {
	var header [1]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return errors.Wrap(err, "restore bit width")
	}
	fresh, err := New(header[0])
	if err != nil {
		return err
	}
	if _, err := io.ReadFull(r, fresh.registers); err != nil {
		return errors.Wrap(err, "restore registers")
	}
	s.Swap(fresh)
	return nil
}
