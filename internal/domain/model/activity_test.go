package model_test

import (
	"testing"

	"github.com/mergington/activities/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestActivityRoster(t *testing.T) {
	Convey("Given an activity with participants", t, func() {
		a := model.Activity{
			Name:            "Chess Club",
			Description:     "Learn strategies",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"a@mergington.edu", "b@mergington.edu"},
		}

		Convey("HasParticipant should find present emails only", func() {
			So(a.HasParticipant("a@mergington.edu"), ShouldBeTrue)
			So(a.HasParticipant("c@mergington.edu"), ShouldBeFalse)
		})

		Convey("AddParticipant should append new emails", func() {
			So(a.AddParticipant("c@mergington.edu"), ShouldBeTrue)
			So(a.Participants, ShouldResemble, []string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu"})
		})

		Convey("AddParticipant should reject duplicates", func() {
			So(a.AddParticipant("a@mergington.edu"), ShouldBeFalse)
			So(len(a.Participants), ShouldEqual, 2)
		})

		Convey("RemoveParticipant should keep order of the rest", func() {
			So(a.RemoveParticipant("a@mergington.edu"), ShouldBeTrue)
			So(a.Participants, ShouldResemble, []string{"b@mergington.edu"})
		})

		Convey("RemoveParticipant should report absent emails", func() {
			So(a.RemoveParticipant("c@mergington.edu"), ShouldBeFalse)
			So(len(a.Participants), ShouldEqual, 2)
		})

		Convey("Clone should detach the roster", func() {
			c := a.Clone()
			c.Participants[0] = "tampered@mergington.edu"
			So(a.Participants[0], ShouldEqual, "a@mergington.edu")
		})
	})
}
