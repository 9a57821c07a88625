package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mergington/activities/internal/adapters/http/api"
	"github.com/mergington/activities/internal/adapters/http/site"
	app "github.com/mergington/activities/internal/app"
	. "github.com/smartystreets/goconvey/convey"
)

// newIntegrationServer wires the real service, API routes, and static site
// the same way main does.
func newIntegrationServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	svc := app.New()
	if err := svc.Start(ctx); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(svc.Stop)

	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(ctx, mux)
	site.Register(ctx, mux)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func getActivities(t *testing.T, baseURL string) map[string]struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
} {
	t.Helper()
	resp, err := http.Get(baseURL + "/activities")
	if err != nil {
		t.Fatalf("get activities: %v", err)
	}
	defer resp.Body.Close()

	var out map[string]struct {
		Description     string   `json:"description"`
		Schedule        string   `json:"schedule"`
		MaxParticipants int      `json:"max_participants"`
		Participants    []string `json:"participants"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode activities: %v", err)
	}
	return out
}

func TestEndToEnd(t *testing.T) {
	Convey("Given a fully wired service", t, func() {
		ts := newIntegrationServer(t)

		Convey("The root path should redirect to the UI index", func() {
			resp, err := noRedirectClient().Get(ts.URL + "/")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusTemporaryRedirect)
			So(resp.Header.Get("Location"), ShouldEqual, "/static/index.html")
		})

		Convey("The static index should be served", func() {
			resp, err := http.Get(ts.URL + "/static/index.html")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})

		Convey("Listing should return all seeded activities with required fields", func() {
			activities := getActivities(t, ts.URL)

			So(len(activities), ShouldEqual, 9)
			for _, want := range []string{
				"Basketball Team", "Tennis Club", "Drama Club", "Art Studio",
				"Debate Team", "Science Club", "Chess Club", "Programming Class", "Gym Class",
			} {
				So(activities, ShouldContainKey, want)
			}
			for _, a := range activities {
				So(a.Description, ShouldNotBeEmpty)
				So(a.Schedule, ShouldNotBeEmpty)
				So(a.MaxParticipants, ShouldBeGreaterThan, 0)
				So(a.Participants, ShouldNotBeNil)
			}
		})

		Convey("A signup round-trip should mutate the roster by exactly one", func() {
			before := len(getActivities(t, ts.URL)["Tennis Club"].Participants)

			resp, err := http.Post(ts.URL+"/activities/Tennis%20Club/signup?email=newstudent@mergington.edu", "", nil)
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var body map[string]string
			So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
			So(body["message"], ShouldContainSubstring, "newstudent@mergington.edu")

			after := getActivities(t, ts.URL)["Tennis Club"].Participants
			So(len(after), ShouldEqual, before+1)
			So(after, ShouldContain, "newstudent@mergington.edu")
		})

		Convey("A duplicate signup should be rejected without changing the roster", func() {
			_, err := http.Post(ts.URL+"/activities/Chess%20Club/signup?email=dup@mergington.edu", "", nil)
			So(err, ShouldBeNil)
			before := len(getActivities(t, ts.URL)["Chess Club"].Participants)

			resp, err := http.Post(ts.URL+"/activities/Chess%20Club/signup?email=dup@mergington.edu", "", nil)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			var body map[string]string
			So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
			So(body["detail"], ShouldContainSubstring, "already signed up")
			So(len(getActivities(t, ts.URL)["Chess Club"].Participants), ShouldEqual, before)
		})

		Convey("Signup for an unknown activity should 404", func() {
			resp, err := http.Post(ts.URL+"/activities/Nonexistent%20Activity/signup?email=x@mergington.edu", "", nil)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			var body map[string]string
			So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
			So(body["detail"], ShouldEqual, "Activity not found")
		})

		Convey("Unregister should remove exactly the targeted email", func() {
			_, err := http.Post(ts.URL+"/activities/Science%20Club/signup?email=removal@mergington.edu", "", nil)
			So(err, ShouldBeNil)
			before := len(getActivities(t, ts.URL)["Science Club"].Participants)

			req, err := http.NewRequest(http.MethodDelete, ts.URL+"/activities/Science%20Club/unregister?email=removal@mergington.edu", nil)
			So(err, ShouldBeNil)
			resp, err := http.DefaultClient.Do(req)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			after := getActivities(t, ts.URL)["Science Club"].Participants
			So(len(after), ShouldEqual, before-1)
			So(after, ShouldNotContain, "removal@mergington.edu")
		})

		Convey("Unregister of a non-member should 400", func() {
			req, err := http.NewRequest(http.MethodDelete, ts.URL+"/activities/Gym%20Class/unregister?email=ghost@mergington.edu", nil)
			So(err, ShouldBeNil)
			resp, err := http.DefaultClient.Do(req)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			var body map[string]string
			So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
			So(body["detail"], ShouldContainSubstring, "not signed up")
		})
	})
}
