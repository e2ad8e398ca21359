package protocol

import (
	"bytes"
	"testing"
)

func TestAppendDumpRow(t *testing.T) {
	tests := []struct {
		name string
		addr uint32
		data []byte
		want string
	}{
		{
			name: "full row grouping",
			addr: 0x1000,
			data: []byte{
				0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48,
				0x49, 0x4a, 0x4b, 0x4c, 0x4d, 0x4e, 0x4f, 0x50,
			},
			want: "00001000:   41 42 43 44  45 46 47 48   49 4a 4b 4c  4d 4e 4f 50\r\n",
		},
		{
			name: "short final row",
			addr: 0x1010,
			data: []byte{0x00, 0xff, 0x7f},
			want: "00001010:   00 ff 7f\r\n",
		},
		{
			name: "single byte",
			addr: 0xdeadbeef,
			data: []byte{0x01},
			want: "deadbeef:   01\r\n",
		},
		{
			name: "empty range row",
			addr: 0,
			data: nil,
			want: "00000000:\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(AppendDumpRow(nil, tt.addr, tt.data))
			if got != tt.want {
				t.Errorf("AppendDumpRow(%#x) = %q, want %q", tt.addr, got, tt.want)
			}
		})
	}
}

func TestParseDumpRow(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		addr    uint32
		data    []byte
		wantErr bool
	}{
		{
			name: "full row",
			line: "00001000:   41 42 43 44  45 46 47 48   49 4a 4b 4c  4d 4e 4f 50",
			addr: 0x1000,
			data: []byte{
				0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48,
				0x49, 0x4a, 0x4b, 0x4c, 0x4d, 0x4e, 0x4f, 0x50,
			},
		},
		{name: "short row", line: "00002000:   de ad", addr: 0x2000, data: []byte{0xde, 0xad}},
		{name: "empty row", line: "00002000:", addr: 0x2000, data: []byte{}},
		{name: "no colon", line: "00002000 de ad", wantErr: true},
		{name: "bad address", line: "xyz: de ad", wantErr: true},
		{name: "bad byte", line: "00002000: zz", wantErr: true},
		{name: "byte too wide", line: "00002000: 1ff", wantErr: true},
		{
			name:    "too many bytes",
			line:    "00002000: 00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f 10",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, data, err := ParseDumpRow(tt.line)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got (%#x, %v)", addr, data)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if addr != tt.addr {
				t.Errorf("addr = %#x, want %#x", addr, tt.addr)
			}
			if !bytes.Equal(data, tt.data) {
				t.Errorf("data = %v, want %v", data, tt.data)
			}
		})
	}
}

func TestDumpRowRoundTrip(t *testing.T) {
	src := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}
	line := AppendDumpRow(nil, 0x10000000, src)

	addr, data, err := ParseDumpRow(string(line[:len(line)-len(Terminator)]))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr != 0x10000000 {
		t.Errorf("addr = %#x, want 0x10000000", addr)
	}
	if !bytes.Equal(data, src) {
		t.Errorf("data = %v, want %v", data, src)
	}
}
