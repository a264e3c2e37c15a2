// seehuhn.de/go/scatter - electron scattering tables for Monte Carlo simulation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scatter

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var cmpMaterial = []cmp.Option{
	cmp.AllowUnexported(Material{}),
	cmpopts.EquateEmpty(),
}

func testMaterials() []*Material {
	empty := New("", 0, 0, 0)

	metal := New("copper", 7, 11.7, 84.9)
	for _, K := range []float64{10, 30, 100, 300, 1000} {
		metal.SetElasticData(K, map[float64]float64{
			0.1: 5 / K,
			0.5: 2,
			1.5: 0.5,
			3.0: 0.1,
		})
		metal.SetInelasticData(K, map[float64]float64{
			K / 10: 1,
			K / 3:  0.3,
			K / 2:  0.1,
		})
	}

	insulator := NewWithBandGap("SiO₂", 9, 10, 8.9, 26.6)
	insulator.SetElasticData(100, map[float64]float64{1: 1})
	insulator.SetIonizationData(99.2, map[float64]float64{150: 1e-4, 1000: 3e-4})
	insulator.SetIonizationData(532, map[float64]float64{600: 2e-5, 1000: 5e-5})

	return []*Material{empty, metal, insulator}
}

func TestRoundTrip(t *testing.T) {
	for _, m := range testMaterials() {
		t.Run(m.Name(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			err := m.Encode(buf)
			if err != nil {
				t.Fatal(err)
			}

			m2, err := Read(buf)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(m, m2, cmpMaterial...); d != "" {
				t.Errorf("round trip failed (-want +got):\n%s", d)
			}
			if buf.Len() != 0 {
				t.Errorf("%d bytes left over", buf.Len())
			}
		})
	}
}

func TestDecodeClears(t *testing.T) {
	mm := testMaterials()
	buf := &bytes.Buffer{}
	err := mm[2].Encode(buf)
	if err != nil {
		t.Fatal(err)
	}

	m := mm[1]
	err = m.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(mm[2], m, cmpMaterial...); d != "" {
		t.Errorf("stale data after Decode (-want +got):\n%s", d)
	}
}

func TestEncodeLayout(t *testing.T) {
	m := NewWithBandGap("ab", 1, 2, 3, 4)
	m.SetIonizationData(10, map[float64]float64{100: 1})

	buf := &bytes.Buffer{}
	err := m.Encode(buf)
	if err != nil {
		t.Fatal(err)
	}

	want := &bytes.Buffer{}
	le := binary.LittleEndian
	_ = binary.Write(want, le, uint32(2))
	want.WriteString("ab")
	_ = binary.Write(want, le, []float64{1, 2})
	want.WriteByte(1)
	_ = binary.Write(want, le, []float64{3, 4})
	_ = binary.Write(want, le, []uint32{0, 0, 0, 0}) // elastic, inelastic
	_ = binary.Write(want, le, uint32(1))
	_ = binary.Write(want, le, float64(10))
	_ = binary.Write(want, le, uint32(1))
	_ = binary.Write(want, le, []float64{math.Log(100), 0})

	if d := cmp.Diff(want.Bytes(), buf.Bytes()); d != "" {
		t.Errorf("unexpected encoding (-want +got):\n%s", d)
	}
}

func TestDecodeTruncated(t *testing.T) {
	buf := &bytes.Buffer{}
	err := testMaterials()[1].Encode(buf)
	if err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	for _, n := range []int{0, 3, 10, 30, len(data) / 2, len(data) - 1} {
		_, err := Read(bytes.NewReader(data[:n]))
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("%d bytes: got %v, want unexpected EOF", n, err)
		}
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Errorf("%d bytes: expected *DecodeError, got %T", n, err)
		}
	}
}

func TestFile(t *testing.T) {
	m := testMaterials()[2]
	name := filepath.Join(t.TempDir(), "sio2.mat")
	err := m.WriteFile(name)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(m, m2, cmpMaterial...); d != "" {
		t.Errorf("file round trip failed (-want +got):\n%s", d)
	}
}

func FuzzDecode(f *testing.F) {
	for _, m := range testMaterials() {
		buf := &bytes.Buffer{}
		err := m.Encode(buf)
		if err != nil {
			f.Fatal(err)
		}
		f.Add(buf.Bytes())
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		m1, err := Read(bytes.NewReader(data))
		if err != nil {
			return
		}

		buf := &bytes.Buffer{}
		err = m1.Encode(buf)
		if err != nil {
			t.Fatal(err)
		}
		data1 := bytes.Clone(buf.Bytes())

		m2, err := Read(buf)
		if err != nil {
			t.Fatal(err)
		}
		buf.Reset()
		err = m2.Encode(buf)
		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(data1, buf.Bytes()) {
			t.Error("different")
		}
	})
}
