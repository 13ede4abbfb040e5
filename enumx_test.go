/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package enumx_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/counter"
)

// resetConfig installs cfg as the global config and restores the previous
// one when the test ends.
func resetConfig(tb testing.TB, cfg apis.Config) {
	tb.Helper()
	prev := enumx.Config()
	enumx.SetConfig(cfg)
	tb.Cleanup(func() { enumx.SetConfig(prev) })
}

func TestNew_FreshCounter(t *testing.T) {
	resetConfig(t, config.NewConfig(config.WithCounter(counter.New())))

	e := enumx.New("A", "B")

	name, ok := e.NameOf(0)
	require.True(t, ok)
	assert.Equal(t, "A", name)
	name, ok = e.NameOf(1)
	require.True(t, ok)
	assert.Equal(t, "B", name)
	_, ok = e.NameOf(99)
	assert.False(t, ok)

	e.Add("A", "C")
	a, _ := e.ValueOf("A")
	c, _ := e.ValueOf("C")
	assert.Equal(t, apis.Value(0), a)
	assert.Equal(t, apis.Value(2), c)
}

func TestNew_DefaultsToGlobalCounter(t *testing.T) {
	cfg := enumx.Config()
	assert.Same(t, counter.Global(), cfg.Counter)

	e1 := enumx.New("A", "B")
	e2 := enumx.New("A", "B")
	for _, e := range e1.Entries() {
		_, ok := e2.NameOf(e.Value)
		assert.False(t, ok, "value %d shared between registries", e.Value)
	}
}

func TestSetConfig_NormalizesNilFields(t *testing.T) {
	resetConfig(t, apis.Config{})

	cfg := enumx.Config()
	assert.Same(t, counter.Global(), cfg.Counter)
	assert.Same(t, config.DiscardLogger(), cfg.Logger)
}

func TestSetConfig_LoggerReachesRegistry(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	resetConfig(t, config.NewConfig(config.WithCounter(counter.New()), config.WithLogger(l)))

	enumx.New("LOGGED")

	assert.Contains(t, buf.String(), "name=LOGGED")
}

func TestSetConfig_DoesNotAffectBuiltRegistries(t *testing.T) {
	first := counter.New()
	resetConfig(t, config.NewConfig(config.WithCounter(first)))
	e := enumx.New("A")

	enumx.SetConfig(config.NewConfig(config.WithCounter(counter.NewFrom(500))))
	e.Add("B")

	b, _ := e.ValueOf("B")
	assert.Equal(t, apis.Value(1), b)
	assert.Equal(t, apis.Value(2), first.Peek())
}

func TestNewWithConfig(t *testing.T) {
	e := enumx.NewWithConfig(config.NewConfig(config.WithCounter(counter.NewFrom(10))), "X", "Y")

	want := []apis.Entry{{Name: "X", Value: 10}, {Name: "Y", Value: 11}}
	if diff := cmp.Diff(want, e.Entries()); diff != "" {
		t.Fatalf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	e := enumx.NewWithConfig(config.NewConfig(config.WithIsolatedCounter()), "A", "B")

	v, err := enumx.Parse(e, "B")
	require.NoError(t, err)
	assert.Equal(t, apis.Value(1), v)

	_, err = enumx.Parse(e, "Z")
	require.ErrorIs(t, err, enumx.ErrUnknownName)
	assert.Contains(t, err.Error(), `"Z"`)

	_, err = enumx.Parse(nil, "A")
	require.ErrorIs(t, err, enumx.ErrNilRegistry)
}

func TestFormat(t *testing.T) {
	e := enumx.NewWithConfig(config.NewConfig(config.WithIsolatedCounter()), "A", "B")

	name, err := enumx.Format(e, 0)
	require.NoError(t, err)
	assert.Equal(t, "A", name)

	_, err = enumx.Format(e, 99)
	require.ErrorIs(t, err, enumx.ErrUnknownValue)
	assert.Contains(t, err.Error(), "99")

	_, err = enumx.Format(nil, 0)
	require.ErrorIs(t, err, enumx.ErrNilRegistry)
}

func TestMustValue(t *testing.T) {
	e := enumx.NewWithConfig(config.NewConfig(config.WithIsolatedCounter()), "A")

	assert.Equal(t, apis.Value(0), enumx.MustValue(e, "A"))
	assert.Panics(t, func() { enumx.MustValue(e, "MISSING") })
}

func TestEntryString(t *testing.T) {
	assert.Equal(t, "TYPE1=3", apis.Entry{Name: "TYPE1", Value: 3}.String())
	assert.Equal(t, "<empty>=0", apis.Entry{}.String())
}
