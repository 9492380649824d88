package chat

import (
	"PathForge/internal/models"
	"PathForge/pkg/logger"
	"PathForge/pkg/scheduler"
	"context"
	"time"
)

const (
	textReply  = "Thanks for your message!"
	voiceReply = "Thanks for the voice message!"
)

// EchoResponder is the demo stand-in for a real peer: after a fixed
// delay it answers every sent message with a canned text reply
// attributed to the receiver. Scheduled replies always fire.
type EchoResponder struct {
	log   logger.Log
	sched scheduler.Scheduler
	delay time.Duration
	chat  *ChatService
}

func NewEchoResponder(l logger.Log, sched scheduler.Scheduler, delay time.Duration, chat *ChatService) *EchoResponder {
	return &EchoResponder{
		log:   l,
		sched: sched,
		delay: delay,
		chat:  chat,
	}
}

// MessageSent satisfies the chat service's message hook.
func (r *EchoResponder) MessageSent(msg models.Message) {
	reply := textReply
	if msg.Type == models.MessageTypeVoice {
		reply = voiceReply
	}

	r.sched.Schedule(r.delay, func() {
		// Bypasses SendMessage so the reply never re-triggers the hook.
		_, err := r.chat.append(context.Background(), msg.ReceiverID, msg.SenderID, reply, models.MessageTypeText, "", 0)
		if err != nil {
			r.log.ErrorErr("failed to append auto reply", err, "peer_id", msg.ReceiverID)
		}
	})
}
