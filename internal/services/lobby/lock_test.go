package lobby

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_LockReleasesScopeEntries(t *testing.T) {
	svc := &service{locks: make(map[string]*scopeLock)}

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			unlock := svc.lock("guild-1")
			counter++
			unlock()

			svc.lock("guild-" + string(rune('a'+i%26)))()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Empty(t, svc.locks)
}

func TestService_LockKeepsEntryWhileHeld(t *testing.T) {
	svc := &service{locks: make(map[string]*scopeLock)}

	unlock := svc.lock("guild-1")
	assert.Len(t, svc.locks, 1)

	unlock()
	assert.Empty(t, svc.locks)
}
