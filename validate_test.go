package filemagic

import (
	"errors"
	"testing"
)

func TestExpect(t *testing.T) {
	png := pngSample(t, 2, 2)
	gif := gifSample(t)

	tests := []struct {
		name    string
		data    []byte
		allowed []FileType
		want    FileType
		wantErr error
	}{
		{name: "allowed", data: png, allowed: []FileType{Jpeg, Png}, want: Png},
		{name: "any type", data: gif, allowed: nil, want: Gif},
		{name: "not allowed", data: gif, allowed: []FileType{Jpeg, Png}, want: Gif, wantErr: ErrTypeNotAllowed},
		{name: "no match", data: []byte("text"), allowed: []FileType{Png}, want: Unknown, wantErr: ErrNoMatch},
		{name: "empty", data: nil, want: Unknown, wantErr: ErrNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expect(tt.data, tt.allowed...)
			if got != tt.want {
				t.Errorf("Expect() type = %v, want %v", got, tt.want)
			}
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Expect() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expect() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpectNoMatchContext(t *testing.T) {
	_, err := Expect([]byte("plain text"))
	if !IsNoMatch(err) {
		t.Fatalf("Expect() error = %v, want %v", err, ErrNoMatch)
	}
	if err == ErrNoMatch {
		t.Error("Expect() returned the bare sentinel, want it wrapped")
	}
	if want := "no known file signature in 10 bytes"; err.Error() != want {
		t.Errorf("Expect() error = %q, want %q", err, want)
	}
}

func TestExpectCopiesAllowed(t *testing.T) {
	allowed := []FileType{Png}
	_, err := Expect(gifSample(t), allowed...)

	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Expect() error = %v, want *MismatchError", err)
	}
	allowed[0] = Gif
	if mismatch.Allowed[0] != Png {
		t.Error("MismatchError.Allowed aliases the caller's slice")
	}
}
