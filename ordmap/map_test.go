package ordmap

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/btree"

	"github.com/ajwerner/avl/status"
)

func compareStrings(a, b *string) int { return strings.Compare(*a, *b) }

func compareInts(a, b *int) int {
	switch {
	case *a < *b:
		return -1
	case *a == *b:
		return 0
	default:
		return 1
	}
}

func strp(s string) *string { return &s }
func intp(v int) *int       { return &v }

func keys(t *testing.T, m *Map[string, int]) []string {
	t.Helper()
	var out []string
	require.NoError(t, m.Traverse(func(p *Pair[string, int]) {
		out = append(out, *p.Key())
	}))
	return out
}

func TestNilMap(t *testing.T) {
	var m *Map[string, int]
	key, value := strp("MANGO"), intp(0)
	assert.Equal(t, status.ContainerNull, status.Of(m.Insert(key, value, compareStrings)))
	_, ok := m.Replace(key, value, compareStrings)
	assert.False(t, ok)
	_, ok = m.Find(key, compareStrings)
	assert.False(t, ok)
	assert.Equal(t, status.ContainerNull, status.Of(m.Traverse(func(*Pair[string, int]) {})))
	p, err := m.Remove(key, compareStrings)
	assert.Nil(t, p)
	assert.Equal(t, status.ContainerNull, status.Of(err))
	assert.Equal(t, status.ContainerNull, status.Of(m.Clear(func(*Pair[string, int]) {})))
	assert.Equal(t, status.ContainerNull, status.Of(m.Destroy(func(*Pair[string, int]) {})))
	assert.Equal(t, 0, m.Len())
}

func TestEmptyMap(t *testing.T) {
	m := New[string, int]()
	apple := strp("APPLE")

	v, ok := m.Find(apple, compareStrings)
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, status.ContainerEmpty, status.Of(m.Traverse(func(*Pair[string, int]) {})))
	_, ok = m.Replace(apple, intp(1), compareStrings)
	assert.False(t, ok)
	p, err := m.Remove(apple, compareStrings)
	assert.Nil(t, p)
	assert.Equal(t, status.ContainerEmpty, status.Of(err))

	eighteen := intp(18)
	require.NoError(t, m.Insert(apple, eighteen, compareStrings))
	assert.Equal(t, 1, m.Len())

	old, ok := m.Replace(strp("APPLE"), intp(68), compareStrings)
	require.True(t, ok)
	assert.Same(t, eighteen, old)
	v, ok = m.Find(strp("APPLE"), compareStrings)
	require.True(t, ok)
	assert.Equal(t, 68, *v)

	p, err = m.Remove(apple, compareStrings)
	require.NoError(t, err)
	assert.Same(t, apple, p.Key())
	assert.Equal(t, 68, *p.Value())
	assert.Equal(t, 0, m.Len())

	err = m.Destroy(nil)
	assert.Equal(t, status.ContainerEmpty, status.Of(err))
	assert.Equal(t, status.ContainerNull, status.Of(m.Insert(apple, eighteen, compareStrings)))
}

func TestFruits(t *testing.T) {
	m := New[string, int]()
	fruits := []struct {
		name  string
		count int
	}{
		{"APPLE", 18}, {"BANANA", 32}, {"WATERMELON", 25}, {"PAPAYA", 16},
		{"GRAPE", 47}, {"TANGERINE", 50}, {"ORANGE", 88},
	}
	values := map[string]*int{}
	for _, f := range fruits {
		v := intp(f.count)
		values[f.name] = v
		require.NoError(t, m.Insert(strp(f.name), v, compareStrings))
	}
	require.Equal(t, 7, m.Len())
	assert.Equal(t, []string{
		"APPLE", "BANANA", "GRAPE", "ORANGE", "PAPAYA", "TANGERINE", "WATERMELON",
	}, keys(t, m))

	mango, zero := strp("MANGO"), intp(0)
	for _, tc := range []struct {
		name string
		err  error
		code status.Code
	}{
		{"nil comparator", m.Insert(mango, zero, nil), status.PairCallbackNull},
		{"nil key", m.Insert(nil, zero, compareStrings), status.KeyNull},
		{"duplicate key", m.Insert(strp("GRAPE"), zero, compareStrings), status.DuplicateKey},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, status.Of(tc.err))
		})
	}
	_, ok := m.Find(mango, nil)
	assert.False(t, ok)
	_, ok = m.Find(nil, compareStrings)
	assert.False(t, ok)
	_, ok = m.Replace(mango, zero, nil)
	assert.False(t, ok)
	_, ok = m.Replace(nil, zero, compareStrings)
	assert.False(t, ok)
	_, err := m.Remove(mango, nil)
	assert.Equal(t, status.PairCallbackNull, status.Of(err))
	_, err = m.Remove(nil, compareStrings)
	assert.Equal(t, status.KeyNull, status.Of(err))
	assert.Equal(t, 7, m.Len())

	for name, v := range values {
		got, ok := m.Find(strp(name), compareStrings)
		require.True(t, ok, name)
		assert.Same(t, v, got)
	}
	_, ok = m.Find(mango, compareStrings)
	assert.False(t, ok)
	_, ok = m.Replace(mango, zero, compareStrings)
	assert.False(t, ok)
	assert.Equal(t, 7, m.Len())

	p, err := m.Remove(strp("ORANGE"), compareStrings)
	require.NoError(t, err)
	assert.Equal(t, "ORANGE", *p.Key())
	assert.Same(t, values["ORANGE"], p.Value())
	p, err = m.Remove(strp("ORANGE"), compareStrings)
	assert.NoError(t, err)
	assert.Nil(t, p)
	assert.Equal(t, 6, m.Len())

	var destroyedKeys []string
	var destroyedValues int
	require.NoError(t, m.Clear(func(p *Pair[string, int]) {
		p.Destroy(
			func(k *string) { destroyedKeys = append(destroyedKeys, *k) },
			func(*int) { destroyedValues++ },
		)
		assert.Nil(t, p.Key())
		assert.Nil(t, p.Value())
	}))
	assert.ElementsMatch(t, []string{
		"APPLE", "BANANA", "GRAPE", "PAPAYA", "TANGERINE", "WATERMELON",
	}, destroyedKeys)
	assert.Equal(t, 6, destroyedValues)
	assert.Equal(t, 0, m.Len())
}

func TestPair(t *testing.T) {
	k, v := strp("KIWI"), intp(3)
	p := NewPair(k, v)
	assert.Same(t, k, p.Key())
	assert.Same(t, v, p.Value())

	var keyDestroyed bool
	p.Destroy(func(got *string) {
		assert.Same(t, k, got)
		keyDestroyed = true
	}, nil)
	assert.True(t, keyDestroyed)
	assert.Nil(t, p.Key())
	assert.Same(t, v, p.Value())

	var nilPair *Pair[string, int]
	assert.Nil(t, nilPair.Key())
	assert.Nil(t, nilPair.Value())
	nilPair.Destroy(nil, nil)
}

// TestAgainstBTree runs a random sequence of map operations against both a
// Map and a btree.Map and compares them after each step.
func TestAgainstBTree(t *testing.T) {
	const (
		steps   = 5000
		numKeys = 256
		degree  = 16
	)
	rng := rand.New(rand.NewSource(1))
	m := New[int, int]()
	oracle := btree.NewMap[int, int](degree)
	for i := 0; i < steps; i++ {
		k := rng.Intn(numKeys)
		switch rng.Intn(4) {
		case 0, 1:
			err := m.Insert(intp(k), intp(i), compareInts)
			if _, ok := oracle.Get(k); ok {
				require.Equal(t, status.DuplicateKey, status.Of(err))
			} else {
				require.NoError(t, err)
				oracle.Set(k, i)
			}
		case 2:
			old, ok := m.Replace(intp(k), intp(i), compareInts)
			exp, expOK := oracle.Get(k)
			require.Equal(t, expOK, ok)
			if expOK {
				require.Equal(t, exp, *old)
				oracle.Set(k, i)
			}
		case 3:
			p, err := m.Remove(intp(k), compareInts)
			if oracle.Len() == 0 {
				require.Equal(t, status.ContainerEmpty, status.Of(err))
				break
			}
			require.NoError(t, err)
			exp, ok := oracle.Delete(k)
			if !ok {
				require.Nil(t, p)
				break
			}
			require.NotNil(t, p)
			require.Equal(t, k, *p.Key())
			require.Equal(t, exp, *p.Value())
		}
		require.Equal(t, oracle.Len(), m.Len())
		v, ok := m.Find(intp(k), compareInts)
		exp, expOK := oracle.Get(k)
		require.Equal(t, expOK, ok)
		if ok {
			require.Equal(t, exp, *v)
		}
	}

	type kv struct{ k, v int }
	var exp, got []kv
	oracle.Scan(func(k, v int) bool {
		exp = append(exp, kv{k, v})
		return true
	})
	if len(exp) == 0 {
		return
	}
	require.NoError(t, m.Traverse(func(p *Pair[int, int]) {
		got = append(got, kv{*p.Key(), *p.Value()})
	}))
	assert.Equal(t, exp, got)
}
