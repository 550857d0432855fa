package core

import "testing"

func TestDriverRegistration(t *testing.T) {
	s := &fakeSampler{script: []sampleStep{{raw: 1}}}
	tx := &fakeTransmitter{}

	SetSampler(s)
	SetTransmitter(tx)

	if MustSampler() != Sampler(s) {
		t.Error("MustSampler did not return the registered sampler")
	}
	if MustTransmitter() != FrameTransmitter(tx) {
		t.Error("MustTransmitter did not return the registered transmitter")
	}
}

func TestMustSamplerPanicsWhenUnset(t *testing.T) {
	SetSampler(nil)
	defer func() {
		if recover() == nil {
			t.Error("MustSampler did not panic with no driver registered")
		}
	}()
	MustSampler()
}
