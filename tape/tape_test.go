package tape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var storages = []Storage{STORAGE_STATIC, STORAGE_DYNAMIC}

func TestTape_New(t *testing.T) {
	assert := assert.New(t)

	for _, storage := range storages {
		tape := New(storage)
		assert.Equal(byte(0), tape.Current(), storage.String())
		assert.Equal(0, tape.Pointer(), storage.String())
	}

	assert.IsType(&ArrayTape{}, New(STORAGE_STATIC))
	assert.IsType(&SliceTape{}, New(STORAGE_DYNAMIC))
}

func TestTape_Set(t *testing.T) {
	assert := assert.New(t)

	for _, storage := range storages {
		tape := New(storage)
		tape.Increment()
		tape.Set(20)
		assert.Equal(byte(20), tape.Current(), storage.String())
	}
}

func TestTape_Increment(t *testing.T) {
	assert := assert.New(t)

	for _, storage := range storages {
		tape := New(storage)
		tape.Set(20)
		tape.Increment()
		assert.Equal(byte(21), tape.Current(), storage.String())

		tape.Set(255)
		tape.Increment()
		assert.Equal(byte(0), tape.Current(), storage.String())
	}
}

func TestTape_Decrement(t *testing.T) {
	assert := assert.New(t)

	for _, storage := range storages {
		tape := New(storage)
		tape.Set(20)
		tape.Decrement()
		assert.Equal(byte(19), tape.Current(), storage.String())

		tape.Set(0)
		tape.Decrement()
		assert.Equal(byte(255), tape.Current(), storage.String())
	}
}

func TestTape_Advance(t *testing.T) {
	assert := assert.New(t)

	for _, storage := range storages {
		tape := New(storage)
		tape.Set(20)
		assert.NoError(tape.Advance(), storage.String())
		assert.Equal(1, tape.Pointer(), storage.String())
		assert.Equal(byte(0), tape.Current(), storage.String())
	}
}

func TestTape_Retreat(t *testing.T) {
	assert := assert.New(t)

	for _, storage := range storages {
		tape := New(storage)
		tape.Set(20)
		assert.NoError(tape.Advance(), storage.String())
		assert.Equal(byte(0), tape.Current(), storage.String())
		assert.NoError(tape.Retreat(), storage.String())
		assert.Equal(byte(20), tape.Current(), storage.String())
	}
}

func TestTape_Retreat_Overflow(t *testing.T) {
	assert := assert.New(t)

	for _, storage := range storages {
		tape := New(storage)
		tape.Set(7)

		err := tape.Retreat()
		assert.ErrorIs(err, ErrOverflow, storage.String())
		assert.Equal(0, tape.Pointer(), storage.String())
		assert.Equal(byte(7), tape.Current(), storage.String())
	}
}

func TestTape_Advance_Overflow(t *testing.T) {
	assert := assert.New(t)

	for _, storage := range storages {
		tape := New(storage)
		for range TAPE_LENGTH - 1 {
			assert.NoError(tape.Advance())
		}
		assert.Equal(TAPE_LENGTH-1, tape.Pointer(), storage.String())
		tape.Set(9)

		err := tape.Advance()
		assert.ErrorIs(err, ErrOverflow, storage.String())
		assert.Equal(TAPE_LENGTH-1, tape.Pointer(), storage.String())
		assert.Equal(byte(9), tape.Current(), storage.String())

		assert.NoError(tape.Retreat(), storage.String())
		assert.Equal(TAPE_LENGTH-2, tape.Pointer(), storage.String())
	}
}

func TestTape_Reset(t *testing.T) {
	assert := assert.New(t)

	for _, storage := range storages {
		tape := New(storage)
		tape.Set(3)
		assert.NoError(tape.Advance())
		tape.Set(4)

		tape.Reset()
		assert.Equal(0, tape.Pointer(), storage.String())
		assert.Equal(byte(0), tape.Current(), storage.String())
		assert.NoError(tape.Advance())
		assert.Equal(byte(0), tape.Current(), storage.String())
	}
}

func TestStorage_Parse(t *testing.T) {
	assert := assert.New(t)

	for _, storage := range storages {
		parsed, err := ParseStorage(storage.String())
		assert.NoError(err)
		assert.Equal(storage, parsed)
	}

	_, err := ParseStorage("magnetic")
	assert.ErrorIs(err, ErrStorage)
	assert.Equal("Storage(9)", Storage(9).String())
}
