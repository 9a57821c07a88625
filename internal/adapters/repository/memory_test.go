package repository_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	repository "github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func testSeed() []model.Activity {
	return []model.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Painting and drawing",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    nil,
		},
	}
}

func TestMemoryRegistry(t *testing.T) {
	convey.Convey("Given a seeded memory registry", t, func() {
		ctx := context.Background()
		reg := repository.NewMemoryRegistry(repository.WithSeed(testSeed()))

		convey.Convey("When listing activities", func() {
			list, err := reg.List(ctx)

			convey.Convey("Then it should return every record in seed order", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(list), convey.ShouldEqual, 2)
				convey.So(list[0].Name, convey.ShouldEqual, "Chess Club")
				convey.So(list[1].Name, convey.ShouldEqual, "Art Studio")
			})

			convey.Convey("And mutating the result should not touch registry state", func() {
				list[0].Participants[0] = "tampered@mergington.edu"
				got, err := reg.Get(ctx, "Chess Club")
				convey.So(err, convey.ShouldBeNil)
				convey.So(got.Participants[0], convey.ShouldEqual, "michael@mergington.edu")
			})
		})

		convey.Convey("When getting an unknown activity", func() {
			_, err := reg.Get(ctx, "Surf Club")

			convey.Convey("Then it should return ErrNotFound", func() {
				convey.So(err, convey.ShouldEqual, repository.ErrNotFound)
			})
		})

		convey.Convey("When signing up a new email", func() {
			err := reg.Signup(ctx, "Chess Club", "new@mergington.edu")

			convey.Convey("Then the roster should grow by one", func() {
				convey.So(err, convey.ShouldBeNil)
				got, err := reg.Get(ctx, "Chess Club")
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(got.Participants), convey.ShouldEqual, 2)
				convey.So(got.HasParticipant("new@mergington.edu"), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When signing up a duplicate email", func() {
			err := reg.Signup(ctx, "Chess Club", "michael@mergington.edu")

			convey.Convey("Then it should return ErrAlreadySignedUp and leave the roster alone", func() {
				convey.So(err, convey.ShouldEqual, repository.ErrAlreadySignedUp)
				got, gerr := reg.Get(ctx, "Chess Club")
				convey.So(gerr, convey.ShouldBeNil)
				convey.So(len(got.Participants), convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When signing up for an unknown activity", func() {
			err := reg.Signup(ctx, "Surf Club", "new@mergington.edu")

			convey.Convey("Then it should return ErrNotFound", func() {
				convey.So(err, convey.ShouldEqual, repository.ErrNotFound)
			})
		})

		convey.Convey("When unregistering an existing participant", func() {
			err := reg.Unregister(ctx, "Chess Club", "michael@mergington.edu")

			convey.Convey("Then the roster should shrink by one", func() {
				convey.So(err, convey.ShouldBeNil)
				got, gerr := reg.Get(ctx, "Chess Club")
				convey.So(gerr, convey.ShouldBeNil)
				convey.So(len(got.Participants), convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When unregistering an absent participant", func() {
			err := reg.Unregister(ctx, "Art Studio", "ghost@mergington.edu")

			convey.Convey("Then it should return ErrNotSignedUp", func() {
				convey.So(err, convey.ShouldEqual, repository.ErrNotSignedUp)
			})
		})

		convey.Convey("When unregistering from an unknown activity", func() {
			err := reg.Unregister(ctx, "Surf Club", "ghost@mergington.edu")

			convey.Convey("Then it should return ErrNotFound", func() {
				convey.So(err, convey.ShouldEqual, repository.ErrNotFound)
			})
		})

		convey.Convey("When asking for counts", func() {
			convey.Convey("Then Count should report the activity total", func() {
				convey.So(reg.Count(ctx), convey.ShouldEqual, 2)
			})

			convey.Convey("And RosterSizes should report per-activity sizes", func() {
				sizes := reg.RosterSizes(ctx)
				convey.So(sizes["Chess Club"], convey.ShouldEqual, 1)
				convey.So(sizes["Art Studio"], convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When many goroutines sign up concurrently", func() {
			const n = 50
			var wg sync.WaitGroup
			wg.Add(n)
			for i := 0; i < n; i++ {
				go func(i int) {
					defer wg.Done()
					_ = reg.Signup(ctx, "Art Studio", fmt.Sprintf("s%d@mergington.edu", i))
				}(i)
			}
			wg.Wait()

			convey.Convey("Then every distinct email should be on the roster exactly once", func() {
				got, err := reg.Get(ctx, "Art Studio")
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(got.Participants), convey.ShouldEqual, n)
			})
		})
	})
}

func TestDefaultSeed(t *testing.T) {
	convey.Convey("Given the default seed", t, func() {
		seed := repository.DefaultSeed()

		convey.Convey("Then it should contain the full activity catalog", func() {
			convey.So(len(seed), convey.ShouldEqual, 9)

			names := make(map[string]bool, len(seed))
			for _, a := range seed {
				names[a.Name] = true
			}
			for _, want := range []string{
				"Basketball Team", "Tennis Club", "Drama Club", "Art Studio",
				"Debate Team", "Science Club", "Chess Club", "Programming Class", "Gym Class",
			} {
				convey.So(names[want], convey.ShouldBeTrue)
			}
		})

		convey.Convey("And every record should carry the required fields", func() {
			for _, a := range seed {
				convey.So(a.Description, convey.ShouldNotBeEmpty)
				convey.So(a.Schedule, convey.ShouldNotBeEmpty)
				convey.So(a.MaxParticipants, convey.ShouldBeGreaterThan, 0)
			}
		})
	})
}

func TestLoadSeedFile(t *testing.T) {
	convey.Convey("Given a YAML seed file", t, func() {
		yamlContent := `
Robotics Club:
  description: Build and program robots
  schedule: Mondays, 3:30 PM - 5:00 PM
  max_participants: 10
  participants:
    - zoe@mergington.edu
Choir:
  description: Vocal ensemble
  schedule: Wednesdays, 3:30 PM - 4:30 PM
  max_participants: 25
  participants: []
`
		path := writeTempSeed(t, yamlContent)

		convey.Convey("When loading it", func() {
			seed, err := repository.LoadSeedFile(path)

			convey.Convey("Then it should return the activities sorted by name", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(seed), convey.ShouldEqual, 2)
				convey.So(seed[0].Name, convey.ShouldEqual, "Choir")
				convey.So(seed[1].Name, convey.ShouldEqual, "Robotics Club")
				convey.So(seed[1].MaxParticipants, convey.ShouldEqual, 10)
				convey.So(seed[1].Participants, convey.ShouldResemble, []string{"zoe@mergington.edu"})
			})
		})

		convey.Convey("When the file does not exist", func() {
			_, err := repository.LoadSeedFile("/non/existent/seed.yaml")

			convey.Convey("Then it should return ErrInvalidSeed", func() {
				convey.So(err, convey.ShouldWrap, repository.ErrInvalidSeed)
			})
		})

		convey.Convey("When the file is empty", func() {
			empty := writeTempSeed(t, "")
			_, err := repository.LoadSeedFile(empty)

			convey.Convey("Then it should return ErrInvalidSeed", func() {
				convey.So(err, convey.ShouldWrap, repository.ErrInvalidSeed)
			})
		})
	})
}

func writeTempSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp seed: %v", err)
	}
	return path
}
