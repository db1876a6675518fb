package appointment

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	entappt "github.com/cabinetmed/cabinet_backend/internal/repo/appointment"
)

func TestGuardReschedule(t *testing.T) {
	tests := []struct {
		status  entappt.Status
		wantErr error
	}{
		{entappt.StatusPlanned, nil},
		{entappt.StatusCancelled, ErrAlreadyCancelled},
		{entappt.StatusCompleted, ErrAlreadyCompleted},
	}
	for _, tt := range tests {
		if err := guardReschedule(tt.status); !errors.Is(err, tt.wantErr) {
			t.Errorf("guardReschedule(%s) = %v, want %v", tt.status, err, tt.wantErr)
		}
	}
}

func TestGuardCancel(t *testing.T) {
	tests := []struct {
		status   entappt.Status
		wantSkip bool
		wantErr  error
	}{
		{entappt.StatusPlanned, false, nil},
		{entappt.StatusCancelled, true, nil},
		{entappt.StatusCompleted, false, ErrAlreadyCompleted},
	}
	for _, tt := range tests {
		skip, err := guardCancel(tt.status)
		if skip != tt.wantSkip || !errors.Is(err, tt.wantErr) {
			t.Errorf("guardCancel(%s) = (%v, %v), want (%v, %v)",
				tt.status, skip, err, tt.wantSkip, tt.wantErr)
		}
	}
}

func TestGuardComplete(t *testing.T) {
	tests := []struct {
		status  entappt.Status
		wantErr error
	}{
		{entappt.StatusPlanned, nil},
		{entappt.StatusCompleted, ErrAlreadyCompleted},
		{entappt.StatusCancelled, ErrAlreadyCancelled},
	}
	for _, tt := range tests {
		if err := guardComplete(tt.status); !errors.Is(err, tt.wantErr) {
			t.Errorf("guardComplete(%s) = %v, want %v", tt.status, err, tt.wantErr)
		}
	}
}

func TestPractitionerLocksSamePractitionerSerializes(t *testing.T) {
	locks := newPractitionerLocks()
	id := uuid.New()

	var inCritical int
	var maxInCritical int
	var statsMu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu := locks.lockFor(id)
			mu.Lock()
			defer mu.Unlock()

			statsMu.Lock()
			inCritical++
			if inCritical > maxInCritical {
				maxInCritical = inCritical
			}
			statsMu.Unlock()

			time.Sleep(time.Millisecond)

			statsMu.Lock()
			inCritical--
			statsMu.Unlock()
		}()
	}
	wg.Wait()

	if maxInCritical != 1 {
		t.Errorf("expected mutual exclusion, saw %d goroutines in the critical section", maxInCritical)
	}
}

func TestPractitionerLocksDistinctPractitionersDoNotShare(t *testing.T) {
	locks := newPractitionerLocks()
	a := locks.lockFor(uuid.New())
	b := locks.lockFor(uuid.New())

	if a == b {
		t.Error("distinct practitioners should get distinct mutexes")
	}

	id := uuid.New()
	if locks.lockFor(id) != locks.lockFor(id) {
		t.Error("the same practitioner should always get the same mutex")
	}
}
