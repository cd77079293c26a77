package mask

import "testing"

func TestMask_SetTest(t *testing.T) {
	var m Mask
	m.Set(0)
	m.Set(2)
	if !m.Test(0) || !m.Test(2) {
		t.Fatalf("expected bits 0 and 2 set, got %016b", m)
	}
	if m.Test(1) {
		t.Fatalf("expected bit 1 clear, got %016b", m)
	}
	if got, want := m.ToUint16(), uint16(0x0005); got != want {
		t.Fatalf("ToUint16() = %#04x, want %#04x", got, want)
	}
}

func TestMask_ResetAndLoad(t *testing.T) {
	m := Load(0xFFFF)
	m.Reset()
	if m.ToUint16() != 0 {
		t.Fatalf("expected zero mask after Reset, got %#04x", m.ToUint16())
	}
	m2 := Load(0x8000)
	if !m2.Test(15) {
		t.Fatal("expected bit 15 set after Load(0x8000)")
	}
}
