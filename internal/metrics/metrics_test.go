package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vfmatch/search"
	"github.com/katalvlaran/vfmatch/vf2"
)

func counterValue(t *testing.T, r *Recorder, mode, outcome string) float64 {
	t.Helper()
	mfs, err := r.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != "vfmatch_attempts_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			got := map[string]string{}
			for _, lp := range m.GetLabel() {
				got[lp.GetName()] = lp.GetValue()
			}
			if got["mode"] == mode && got["outcome"] == outcome {
				assert.Equal(t, "r1", got["run_id"])
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestObserve(t *testing.T) {
	r := New("r1")
	found := &search.Result{Found: true, Stats: search.Stats{States: 4, Nodes: 3, Elapsed: time.Millisecond}}
	r.Observe(vf2.ModeIsomorphism, found, nil)
	r.Observe(vf2.ModeIsomorphism, found, nil)
	r.Observe(vf2.ModeSubgraph, &search.Result{}, nil)
	r.Observe(vf2.ModeSubgraph, nil, errors.New("boom"))

	assert.Equal(t, 2.0, counterValue(t, r, "isomorphism", OutcomeFound))
	assert.Equal(t, 1.0, counterValue(t, r, "subgraph", OutcomeNotFound))
	assert.Equal(t, 1.0, counterValue(t, r, "subgraph", OutcomeAborted))
}

func TestWriteFile(t *testing.T) {
	r := New("r2")
	r.Observe(vf2.ModeIsomorphism, &search.Result{Found: true}, nil)

	path := filepath.Join(t.TempDir(), "vfmatch.prom")
	require.NoError(t, r.WriteFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `vfmatch_attempts_total{mode="isomorphism",outcome="found",run_id="r2"} 1`)
	assert.Contains(t, string(data), "vfmatch_states_bucket")
}
