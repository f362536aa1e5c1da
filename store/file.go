package store

import (
	"sync"

	"github.com/metafates/gache"
	"github.com/mydrama-tv/mydrama/filesystem"
)

// File keeps every key in a single gache-managed JSON object.
type File struct {
	mu     sync.Mutex
	cacher *gache.Cache[map[string]string]
}

func NewFile(path string) *File {
	return &File{
		cacher: gache.New[map[string]string](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func (f *File) read() (map[string]string, error) {
	cached, expired, err := f.cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]string), nil
	}
	return cached, nil
}

func (f *File) Load(key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return nil, err
	}

	value, ok := values[key]
	if !ok {
		return nil, nil
	}
	return []byte(value), nil
}

// Save overwrites key. An unreadable file is replaced by a fresh one.
func (f *File) Save(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		values = make(map[string]string)
	}

	values[key] = string(value)
	return f.cacher.Set(values)
}

func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return err
	}

	delete(values, key)
	return f.cacher.Set(values)
}

func (f *File) Close() error {
	return nil
}
