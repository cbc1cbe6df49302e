package service

import (
	"context"
	"testing"
)

func TestStatusFields(t *testing.T) {
	s := newTestService(ServiceConfig{Registry: reg("iris-v1"), DefaultModel: "iris-v1", MaxQueueDepth: 8}, nil)
	st := s.Status()
	if st.State != string(StateLoading) {
		t.Fatalf("state=%s", st.State)
	}
	if st.DefaultModel != "iris-v1" {
		t.Fatalf("default=%s", st.DefaultModel)
	}
	if st.ServerTimeUnix == 0 {
		t.Fatal("server time missing")
	}
	if len(st.Instances) != 0 {
		t.Fatalf("instances=%+v", st.Instances)
	}

	if err := s.Warmup(context.Background()); err != nil {
		t.Fatalf("warmup: %v", err)
	}
	st = s.Status()
	if st.State != string(StateReady) {
		t.Fatalf("state=%s", st.State)
	}
	if len(st.Instances) != 1 {
		t.Fatalf("instances=%+v", st.Instances)
	}
	inst := st.Instances[0]
	if inst.ModelID != "iris-v1" || inst.State != string(StateReady) || inst.MaxQueueDepth != 8 {
		t.Fatalf("instance=%+v", inst)
	}
}
