package ingest

import (
	"errors"
	"testing"
)

func TestDecodeText_UTF8(t *testing.T) {
	text, name, err := DecodeText([]byte("date,adult tickets\n2024-01-01,10\n"))
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if name != "utf-8" {
		t.Fatalf("encoding=%s want=utf-8", name)
	}
	if text != "date,adult tickets\n2024-01-01,10\n" {
		t.Fatalf("text=%q", text)
	}
}

func TestDecodeText_Latin1Fallback(t *testing.T) {
	// "café" in latin-1; 0xE9 alone is invalid UTF-8.
	raw := []byte{'c', 'a', 'f', 0xe9}
	text, name, err := DecodeText(raw)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if name != "latin-1" {
		t.Fatalf("encoding=%s want=latin-1", name)
	}
	if text != "café" {
		t.Fatalf("text=%q want=café", text)
	}
}

func TestDecodeWith_UTF16LittleEndianBOM(t *testing.T) {
	raw := []byte{0xff, 0xfe, 'h', 0x00, 'i', 0x00}
	ladder := []Encoding{
		{Name: "utf-8", Decode: decodeUTF8},
		{Name: "utf-16", Decode: decodeUTF16BOM},
	}
	text, name, err := decodeWith(raw, ladder)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if name != "utf-16" {
		t.Fatalf("encoding=%s want=utf-16", name)
	}
	if text != "hi" {
		t.Fatalf("text=%q want=hi", text)
	}
}

func TestDecodeWith_UTF16BigEndianBOM(t *testing.T) {
	raw := []byte{0xfe, 0xff, 0x00, 'h', 0x00, 'i'}
	text, ok := decodeUTF16BOM(raw)
	if !ok {
		t.Fatalf("decode failed")
	}
	if text != "hi" {
		t.Fatalf("text=%q want=hi", text)
	}
}

func TestDecodeUTF16_OddLengthRejected(t *testing.T) {
	if _, ok := decodeUTF16Bytes([]byte{0x00, 'h', 0x00}, false); ok {
		t.Fatalf("odd-length payload decoded")
	}
}

func TestDecodeWith_AllFail(t *testing.T) {
	ladder := []Encoding{
		{Name: "utf-8", Decode: decodeUTF8},
		{Name: "ascii", Decode: decodeASCII},
	}
	_, _, err := decodeWith([]byte{0xff}, ladder)
	if err == nil {
		t.Fatalf("want DecodeError")
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("err=%T want=*DecodeError", err)
	}
	if len(decodeErr.Tried) != 2 || decodeErr.Tried[0] != "utf-8" || decodeErr.Tried[1] != "ascii" {
		t.Fatalf("tried=%v", decodeErr.Tried)
	}
}

func TestDecodeASCII_RejectsHighBytes(t *testing.T) {
	if _, ok := decodeASCII([]byte{'a', 0x80}); ok {
		t.Fatalf("high byte accepted as ascii")
	}
	text, ok := decodeASCII([]byte("plain"))
	if !ok || text != "plain" {
		t.Fatalf("text=%q ok=%v", text, ok)
	}
}
