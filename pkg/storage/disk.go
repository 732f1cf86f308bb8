package storage

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path"

	"github.com/klastad/course-finder/pkg/types"
)

const coursesFile = "courses.jz"
const tracksFile = "tracks.jz"

// DiskStorage persists the catalog as gzipped JSON for warm restarts.
// Writes go to a temp file first and are renamed into place.
type DiskStorage struct {
	Folder string
}

func NewDiskStorage(folder string) (*DiskStorage, error) {
	if err := os.MkdirAll(folder, 0755); err != nil {
		return nil, err
	}
	return &DiskStorage{Folder: folder}, nil
}

func (d *DiskStorage) getFileName(name string) (string, string) {
	fileName := path.Join(d.Folder, name)
	return fileName, fileName + ".tmp"
}

func (d *DiskStorage) SaveCourses(items []types.RawCourse) error {
	return d.saveGzippedJson(items, coursesFile)
}

func (d *DiskStorage) LoadCourses() ([]types.RawCourse, error) {
	ret := []types.RawCourse{}
	err := d.loadGzippedJson(&ret, coursesFile)
	return ret, err
}

func (d *DiskStorage) SaveTracks(items []types.RawTrack) error {
	return d.saveGzippedJson(items, tracksFile)
}

func (d *DiskStorage) LoadTracks() ([]types.RawTrack, error) {
	ret := []types.RawTrack{}
	err := d.loadGzippedJson(&ret, tracksFile)
	return ret, err
}

func (d *DiskStorage) saveGzippedJson(data any, name string) error {
	fileName, tmpFileName := d.getFileName(name)

	file, err := os.Create(tmpFileName)
	if err != nil {
		return err
	}

	zipWriter := gzip.NewWriter(file)
	enc := json.NewEncoder(zipWriter)
	if err = enc.Encode(data); err != nil {
		zipWriter.Close()
		file.Close()
		os.Remove(tmpFileName)
		return err
	}
	if err = zipWriter.Close(); err != nil {
		file.Close()
		os.Remove(tmpFileName)
		return err
	}
	if err = file.Close(); err != nil {
		os.Remove(tmpFileName)
		return err
	}
	return os.Rename(tmpFileName, fileName)
}

func (d *DiskStorage) loadGzippedJson(data any, name string) error {
	fileName, _ := d.getFileName(name)
	file, err := os.Open(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	zipReader, err := gzip.NewReader(file)
	if err != nil {
		return err
	}
	defer zipReader.Close()

	dec := json.NewDecoder(zipReader)
	if err = dec.Decode(data); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
