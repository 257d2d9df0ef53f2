package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"socialgram/api"
	"socialgram/domain"
	"socialgram/domain/chat"
	"socialgram/domain/event"
)

type RealtimeScenarioSuite struct {
	BaseSuite

	alice, bob, carol domain.User
	aliceToken        string
	bobToken          string
	carolToken        string
}

func TestRealtimeScenario(t *testing.T) {
	suite.Run(t, new(RealtimeScenarioSuite))
}

// Full client-visible scenario over a real socket: presence fan-out,
// message delivery, moderation, search, and the offline path.
func (s *RealtimeScenarioSuite) TestScenario() {
	s.LogStep("Step 1: Seed three accounts")
	s.alice, s.aliceToken = s.SeedUser("alice", "s3cret")
	s.bob, s.bobToken = s.SeedUser("bob", "s3cret")
	s.carol, s.carolToken = s.SeedUser("carol", "s3cret")

	s.LogStep("Step 2: Alice connects and sees herself online")
	aliceSocket := s.DialSocket(s.alice.ID, s.aliceToken)
	defer aliceSocket.Close()

	online := s.decodeOnlineUsers(s.NextEvent(aliceSocket, event.KindOnlineUsers))
	s.Require().Contains(online, s.alice.ID)

	s.LogStep("Step 3: Bob connects, both see the updated roster")
	bobSocket := s.DialSocket(s.bob.ID, s.bobToken)
	defer bobSocket.Close()

	online = s.decodeOnlineUsers(s.NextEvent(bobSocket, event.KindOnlineUsers))
	s.Require().ElementsMatch([]string{s.alice.ID, s.bob.ID}, online)

	online = s.decodeOnlineUsers(s.NextEvent(aliceSocket, event.KindOnlineUsers))
	s.Require().ElementsMatch([]string{s.alice.ID, s.bob.ID}, online)

	s.LogStep("Step 4: Ping frames are answered with pong")
	s.Require().NoError(aliceSocket.WriteMessage(websocket.TextMessage, []byte("ping")))
	s.Require().Equal("pong", string(s.NextFrame(aliceSocket)))

	s.LogStep("Step 5: Alice messages Bob, delivery is censored")
	status, body := s.DoJSON(http.MethodPost,
		"/api/v1/message/send/"+s.bob.ID, s.aliceToken,
		api.SendMessageRequest{Message: "watch out for the badger"})
	s.Require().Equal(http.StatusCreated, status)

	var sent api.SendMessageResponse
	s.Require().NoError(json.Unmarshal(body, &sent))
	s.Require().True(sent.Success)
	s.Require().Equal("watch out for the ******", sent.NewMessage.Body)

	var received chat.Message
	s.Require().NoError(json.Unmarshal(s.NextEvent(bobSocket, event.KindNewMessage), &received))
	s.Require().Equal(sent.NewMessage.ID, received.ID)
	s.Require().Equal("watch out for the ******", received.Body)

	s.LogStep("Step 6: The message becomes searchable")
	s.Require().Eventually(func() bool {
		status, body := s.DoJSON(http.MethodGet,
			fmt.Sprintf("/api/v1/message/search?q=watch&with=%s", s.bob.ID),
			s.aliceToken, nil)
		if status != http.StatusOK {
			return false
		}
		var hits api.MessagesResponse
		return json.Unmarshal(body, &hits) == nil && len(hits.Messages) == 1
	}, 3*time.Second, 100*time.Millisecond, "indexed message never surfaced")

	s.LogStep("Step 7: Bob disconnects, Alice sees the roster shrink")
	s.Require().NoError(bobSocket.Close())

	online = s.decodeOnlineUsers(s.NextEvent(aliceSocket, event.KindOnlineUsers))
	s.Require().ElementsMatch([]string{s.alice.ID}, online)

	s.LogStep("Step 8: Messaging the offline Carol persists without delivery")
	droppedBefore := s.stats.GetLatest().EventsDropped

	status, body = s.DoJSON(http.MethodPost,
		"/api/v1/message/send/"+s.carol.ID, s.aliceToken,
		api.SendMessageRequest{Message: "are you there?"})
	s.Require().Equal(http.StatusCreated, status)
	s.Require().NoError(json.Unmarshal(body, &sent))

	s.Require().Greater(s.stats.GetLatest().EventsDropped, droppedBefore)

	status, body = s.DoJSON(http.MethodGet,
		"/api/v1/message/conversation/"+s.alice.ID, s.carolToken, nil)
	s.Require().Equal(http.StatusOK, status)

	var history api.MessagesResponse
	s.Require().NoError(json.Unmarshal(body, &history))
	s.Require().Len(history.Messages, 1)
	s.Require().Equal(sent.NewMessage.ID, history.Messages[0].ID)

	s.LogStep("Step 9: Impersonated sockets are refused")
	header := http.Header{}
	header.Set("Authorization", "Bearer "+s.aliceToken)
	_, resp, err := websocket.DefaultDialer.Dial(
		fmt.Sprintf("ws://%s/ws/%s", s.addr, s.carol.ID), header)
	s.Require().Error(err)
	if resp != nil {
		s.Require().Equal(http.StatusForbidden, resp.StatusCode)
		resp.Body.Close()
	}

	s.LogStep("Step 10: Anonymous API calls are refused")
	status, _ = s.DoJSON(http.MethodGet,
		"/api/v1/message/conversation/"+s.bob.ID, "", nil)
	s.Require().Equal(http.StatusUnauthorized, status)
}

func (s *RealtimeScenarioSuite) decodeOnlineUsers(data json.RawMessage) []string {
	var users []string
	s.Require().NoError(json.Unmarshal(data, &users))
	return users
}
