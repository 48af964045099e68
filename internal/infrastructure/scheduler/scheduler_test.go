package scheduler

import (
	"context"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type testLogger struct {
	errors []string
}

func (l *testLogger) Errorf(template string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(template, args...))
}

func TestScheduler(t *testing.T) {
	Convey("Given a Scheduler", t, func() {
		log := &testLogger{}

		Convey("New function", func() {
			scheduler := New(log)

			Convey("It should create a new scheduler successfully", func() {
				So(scheduler, ShouldNotBeNil)
				So(scheduler.cron, ShouldNotBeNil)
			})
		})

		Convey("AddJob function", func() {
			scheduler := New(log)
			job := func(ctx context.Context) error { return nil }

			Convey("When adding a job with a valid cron spec", func() {
				err := scheduler.AddJob("0 3 * * *", job)

				Convey("It should add the job successfully", func() {
					So(err, ShouldBeNil)
				})
			})

			Convey("When adding a job with an invalid cron spec", func() {
				err := scheduler.AddJob("invalid spec", job)

				Convey("It should return an error", func() {
					So(err, ShouldNotBeNil)
				})
			})
		})

		Convey("Start and Stop methods", func() {
			scheduler := New(log)
			err := scheduler.AddJob("0 3 * * *", func(ctx context.Context) error { return nil })
			So(err, ShouldBeNil)

			Convey("When starting and stopping the scheduler", func() {
				Convey("It should start and stop without error", func() {
					So(func() { scheduler.Start() }, ShouldNotPanic)
					So(func() { scheduler.Stop() }, ShouldNotPanic)
				})
			})
		})
	})
}
