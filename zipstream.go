package xbrl

import (
	"archive/zip"
	"io"
	"os"
)

// ZipMember is one decoded entry from a Companies House bulk archive: its
// filename (e.g. "Prod224_3082_09355500_20201231.html") and raw bytes.
type ZipMember struct {
	Name string
	Data []byte
}

// ReadZipMembers spools r to a temporary file — archive/zip needs
// ReaderAt, which an HTTP response body does not provide — then decodes
// every member in archive order (spec §2's "per-company accounts
// documents bundled into dated ZIP archives").
func ReadZipMembers(r io.Reader) ([]ZipMember, error) {
	tmp, err := os.CreateTemp("", "stream-read-xbrl-*.zip")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	size, err := io.Copy(tmp, r)
	if err != nil {
		return nil, err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	zr, err := zip.NewReader(tmp, size)
	if err != nil {
		return nil, err
	}

	members := make([]ZipMember, 0, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
		members = append(members, ZipMember{Name: f.Name, Data: data})
	}
	return members, nil
}
