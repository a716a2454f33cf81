/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dburkart/tstype/pkg/ts/parser"
)

func TestStoreObservesSpeculation(t *testing.T) {
	store := NewStore()
	ms := store.(*metricsStore)

	_, diags, err := parser.ParseModuleString("enum E { 1 = 2 }\ntype T = [number, string];", parser.WithObserver(store))
	require.NoError(t, err)
	store.ObserveDiagnostics(diags)
	store.IncParses("module", "ok")

	discarded := testutil.ToFloat64(ms.Speculations.With(prometheus.Labels{OutcomeLabel: "discarded"}))
	assert.NotZero(t, discarded)
	assert.Equal(t, 1.0, testutil.ToFloat64(ms.Diagnostics.With(prometheus.Labels{CodeLabel: "TS2452"})))
	assert.Equal(t, 1.0, testutil.ToFloat64(ms.Parses.With(prometheus.Labels{KindLabel: "module", ResultLabel: "ok"})))
}

func TestWriteTextfile(t *testing.T) {
	store := NewStore()
	store.IncParses("type", "failed")
	store.ObserveParseNS("type", 1500)

	path := filepath.Join(t.TempDir(), "tstype.prom")
	require.NoError(t, store.WriteTextfile(path))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), `tstype_parses{kind="type",result="failed"} 1`)
	assert.Contains(t, string(contents), "tstype_parse_ns_bucket")
}
