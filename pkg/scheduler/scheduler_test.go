package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeAdvanceFiresDueTasks(t *testing.T) {
	start := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	fake := NewFake(start)

	var fired []string
	fake.Schedule(2*time.Second, func() { fired = append(fired, "b") })
	fake.Schedule(1*time.Second, func() { fired = append(fired, "a") })
	fake.Schedule(10*time.Second, func() { fired = append(fired, "late") })

	fake.Advance(5 * time.Second)

	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, start.Add(5*time.Second), fake.Now())

	fake.Advance(5 * time.Second)
	assert.Equal(t, []string{"a", "b", "late"}, fired)
}

func TestFakeTiesFireInScheduleOrder(t *testing.T) {
	fake := NewFake(time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC))

	var fired []int
	for i := 0; i < 5; i++ {
		i := i
		fake.Schedule(time.Second, func() { fired = append(fired, i) })
	}

	fake.Advance(time.Second)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, fired)
}

func TestFakeCascadingTasks(t *testing.T) {
	start := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	fake := NewFake(start)

	var innerAt time.Time
	fake.Schedule(time.Second, func() {
		fake.Schedule(time.Second, func() { innerAt = fake.Now() })
	})

	fake.Advance(3 * time.Second)

	require.False(t, innerAt.IsZero(), "inner task should have fired")
	assert.Equal(t, start.Add(2*time.Second), innerAt)
}

func TestFakeDoesNotFireFutureTasks(t *testing.T) {
	fake := NewFake(time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC))

	fired := false
	fake.Schedule(2*time.Second, func() { fired = true })

	fake.Advance(time.Second)
	assert.False(t, fired)
}

func TestRealSchedulerNow(t *testing.T) {
	sched := New()
	assert.WithinDuration(t, time.Now(), sched.Now(), time.Second)
}
