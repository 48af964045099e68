package storage

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/semmidev/s3sweep/internal/domain"
)

func TestResolve(t *testing.T) {
	Convey("Given an S3Storage", t, func() {
		s := &S3Storage{}

		Convey("When resolving a bucket with a prefix", func() {
			loc, err := s.Resolve("s3://my-bucket/tmp/scratch/")

			Convey("It should split bucket and prefix", func() {
				So(err, ShouldBeNil)
				So(loc, ShouldResemble, domain.Location{Bucket: "my-bucket", Prefix: "tmp/scratch/"})
			})
		})

		Convey("When resolving a bare bucket", func() {
			loc, err := s.Resolve("s3://my-bucket")

			Convey("It should resolve with an empty prefix", func() {
				So(err, ShouldBeNil)
				So(loc, ShouldResemble, domain.Location{Bucket: "my-bucket", Prefix: ""})
			})
		})

		Convey("When resolving a bucket with a trailing slash", func() {
			loc, err := s.Resolve("s3://my-bucket/")

			Convey("It should resolve with an empty prefix", func() {
				So(err, ShouldBeNil)
				So(loc, ShouldResemble, domain.Location{Bucket: "my-bucket", Prefix: ""})
			})
		})

		Convey("When resolving a non-s3 path spec", func() {
			_, err := s.Resolve("gs://my-bucket/tmp/")

			Convey("It should return an error", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "not an s3:// URI")
			})
		})

		Convey("When resolving a spec with no bucket", func() {
			_, err := s.Resolve("s3:///tmp/")

			Convey("It should return an error", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "no bucket")
			})
		})
	})
}
