package timing

import "testing"

func TestToVectorStringBPM(t *testing.T) {
	td := New(0)
	must(t, td.SetBPMAtRow(0, 120))
	must(t, td.SetBPMAtRow(96, 140.5))

	got := td.ToVectorString(KindBPM, 3)
	want := "0.000=120.000\n2.000=140.500"
	if got != want {
		t.Errorf("ToVectorString(KindBPM, 3) = %q, want %q", got, want)
	}
}

func TestToVectorStringTimeSignature(t *testing.T) {
	td := New(0)
	must(t, td.SetTimeSignatureAtRow(0, 3, 4))

	got := td.ToVectorString(KindTimeSignature, 2)
	want := "0.00=3=4"
	if got != want {
		t.Errorf("ToVectorString(KindTimeSignature, 2) = %q, want %q", got, want)
	}
}

func TestEqualComparesOffsetAndAllKinds(t *testing.T) {
	a := New(1.0)
	must(t, a.SetBPMAtRow(0, 120))
	b := cloneTimingData(a)

	if !a.Equal(b) {
		t.Error("identical TimingData reported not equal")
	}

	must(t, b.SetBPMAtRow(48, 130))
	if a.Equal(b) {
		t.Error("TimingData differing by one segment reported equal")
	}

	c := cloneTimingData(a)
	c.SetOffsetSeconds(2.0)
	if a.Equal(c) {
		t.Error("TimingData differing only by offsetSeconds reported equal")
	}
}

func TestEqualNilOther(t *testing.T) {
	a := New(0)
	if a.Equal(nil) {
		t.Error("Equal(nil) = true, want false")
	}
}
