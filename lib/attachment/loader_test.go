package attachment

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
)

type fakeSource struct {
	name   string
	data   []byte
	err    error
	wait   <-chan struct{} // block Open until closed
	signal chan<- struct{} // closed when Open runs
}

func (f *fakeSource) Name() string {
	return f.name
}

func (f *fakeSource) Open() (io.ReadCloser, error) {
	if f.signal != nil {
		close(f.signal)
	}
	if f.wait != nil {
		<-f.wait
	}
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

// The second file finishes reading before the first; results must still land
// on the slot of their own source.
func Test_Loader_OutOfOrderCompletion(t *testing.T) {
	release := make(chan struct{})

	first := &fakeSource{name: "first.bin", data: []byte("first-data"), wait: release}
	second := &fakeSource{name: "second.bin", data: []byte("second-data"), signal: release}

	var l Loader
	items, err := l.Load(context.Background(), first, second)
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Name != "first.bin" || string(items[0].Data) != "first-data" {
		t.Errorf("slot 0 = %v %q", items[0].Name, items[0].Data)
	}
	if items[1].Name != "second.bin" || string(items[1].Data) != "second-data" {
		t.Errorf("slot 1 = %v %q", items[1].Name, items[1].Data)
	}
	for i, it := range items {
		if !it.IsPending() {
			t.Errorf("item %d is not pending", i)
		}
	}
}

func Test_Loader_FailingSourceFailsBatch(t *testing.T) {
	boom := errors.New("disk gone")
	var l Loader
	_, err := l.Load(context.Background(),
		&fakeSource{name: "ok.bin", data: []byte("x")},
		&fakeSource{name: "bad.bin", err: boom},
	)
	if !errors.Is(err, boom) {
		t.Fatalf("Load() error = %v, want %v", err, boom)
	}
}

func Test_Loader_Preview(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	l := Loader{Preview: true}
	items, err := l.Load(context.Background(),
		&fakeSource{name: "pic.png", data: buf.Bytes()},
		&fakeSource{name: "doc.txt", data: []byte("plain text, not an image")},
	)
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}

	if !strings.HasPrefix(items[0].PreviewURL, "data:image/jpeg;base64,") {
		t.Errorf("image preview URL = %q", items[0].PreviewURL)
	}
	if items[1].PreviewURL != "" {
		t.Errorf("non-image got preview URL %q", items[1].PreviewURL)
	}
}
