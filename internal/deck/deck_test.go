package deck

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/deckcodes/internal/cards"
)

func entry(t *testing.T, code string, count int) cards.CardCodeAndCount {
	t.Helper()
	e, err := cards.CardCodeAndCountFromData(code, count)
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	d := New()
	assert.Equal(t, 0, d.Len())
	assert.Len(t, d.Cards(), 0)
}

func TestFromSlice(t *testing.T) {
	es := []cards.CardCodeAndCount{
		entry(t, "01SI015", 3),
		entry(t, "01DE012", 1),
		entry(t, "01SI015", 2),
	}
	d := FromSlice(es)
	assert.Equal(t, es, d.Cards())
}

func TestAdd(t *testing.T) {
	d := FromSlice([]cards.CardCodeAndCount{entry(t, "01SI015", 3)})
	before := append([]cards.CardCodeAndCount(nil), d.Cards()...)

	e := entry(t, "01SI044", 2)
	d.Add(e)

	require.Equal(t, len(before)+1, d.Len())
	assert.Equal(t, before, d.Cards()[:len(before)])
	assert.Equal(t, e, d.Cards()[d.Len()-1])
}

func TestAdd_DuplicatesNotMerged(t *testing.T) {
	d := New()
	d.Add(entry(t, "01SI015", 1))
	d.Add(entry(t, "01SI015", 2))

	require.Equal(t, 2, d.Len())
	assert.Equal(t, 1, d.Cards()[0].Count)
	assert.Equal(t, 2, d.Cards()[1].Count)
}

func TestAddFromData(t *testing.T) {
	d := New()
	require.NoError(t, d.AddFromData("01SI015", 3))

	card, err := cards.FromCode("01SI015")
	require.NoError(t, err)
	assert.Equal(t, cards.NewCardCodeAndCount(card, 3), d.Cards()[d.Len()-1])
}

func TestAddFromData_Invalid(t *testing.T) {
	d := New()
	require.NoError(t, d.AddFromData("01SI015", 3))

	for _, code := range []string{"", "ZZ0000"} {
		err := d.AddFromData(code, 1)
		assert.True(t, errors.Is(err, cards.ErrInvalidCardCode), "code %q: got %v", code, err)
		assert.Equal(t, 1, d.Len())
	}
}

func TestAddFromData_Scenario(t *testing.T) {
	codes := []string{"01SI015", "01SI044", "01SI048", "01SI054"}
	d := New()
	for _, code := range codes {
		require.NoError(t, d.AddFromData(code, 3))
	}

	require.Len(t, d.Cards(), 4)
	for i, e := range d.Cards() {
		assert.Equal(t, codes[i], e.Card.Code())
		assert.Equal(t, 3, e.Count)
	}
}

func TestCards_AppendDoesNotGrowDeck(t *testing.T) {
	d := New()
	for i := 0; i < 4; i++ {
		d.Add(entry(t, "01SI015", i+1))
	}

	view := d.Cards()
	_ = append(view, entry(t, "01DE012", 1))
	assert.Equal(t, 4, d.Len())

	d.Add(entry(t, "01SI044", 1))
	assert.Len(t, view, 4)
	assert.Equal(t, "01SI044", d.Cards()[4].Card.Code())
}

func TestAll(t *testing.T) {
	es := []cards.CardCodeAndCount{entry(t, "01SI015", 3), entry(t, "01DE012", 1)}
	d := FromSlice(es)

	var got []cards.CardCodeAndCount
	for i, e := range d.All() {
		assert.Equal(t, len(got), i)
		got = append(got, e)
	}
	assert.Equal(t, es, got)
}

func TestEqual(t *testing.T) {
	a := entry(t, "01SI015", 3)
	b := entry(t, "01DE012", 1)

	assert.True(t, New().Equal(New()))
	assert.False(t, New().Equal(nil))
	assert.True(t, New().Equal(FromSlice([]cards.CardCodeAndCount{})))
	assert.True(t, FromSlice([]cards.CardCodeAndCount{a, b}).Equal(FromSlice([]cards.CardCodeAndCount{a, b})))
	assert.False(t, FromSlice([]cards.CardCodeAndCount{a, b}).Equal(FromSlice([]cards.CardCodeAndCount{b, a})))
	assert.False(t, FromSlice([]cards.CardCodeAndCount{a}).Equal(FromSlice([]cards.CardCodeAndCount{a, a})))
	assert.False(t, FromSlice([]cards.CardCodeAndCount{a}).Equal(FromSlice([]cards.CardCodeAndCount{entry(t, "01SI015", 2)})))
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(New())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	d := FromSlice([]cards.CardCodeAndCount{entry(t, "01SI015", 3), entry(t, "01SI015", 1)})
	data, err = json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"cardCode":"01SI015","count":3},{"cardCode":"01SI015","count":1}]`, string(data))

	back := New()
	require.NoError(t, json.Unmarshal(data, back))
	assert.True(t, d.Equal(back))

	err = json.Unmarshal([]byte(`[{"cardCode":"ZZ0000","count":1}]`), back)
	assert.True(t, errors.Is(err, cards.ErrInvalidCardCode))
}
