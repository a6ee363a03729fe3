package client

import (
	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// NewMessageReplies creates the message replies resource.
func NewMessageReplies(httpClient *http.Client) *Resource {
	return NewResource("messageReplies", httpClient,
		Operation{
			Name:   "get",
			Method: methodGet,
			Path:   "messageReplies/{messageReplyId}.json",
			IDs:    []IDParam{pathID("messageReplyId", "You must specify a valid message reply ID when getting a message reply.")},
			Key:    "messageReplies",
		},
		Operation{
			Name:   "update",
			Method: methodPut,
			Path:   "messageReplies/{messageReplyId}.json",
			IDs:    []IDParam{pathID("messageReplyId", "You must specify a valid message reply ID when updating a message reply.")},
			Wrap:   "messagereply",
		},
		Operation{
			Name:   "markRead",
			Method: methodPut,
			Path:   "messageReplies/{messageReplyId}/markread.json",
			IDs:    []IDParam{pathID("messageReplyId", "You must specify a valid message reply ID when marking a reply as read.")},
		},
		Operation{
			Name:   "delete",
			Method: methodDelete,
			Path:   "messageReplies/{messageReplyId}.json",
			IDs:    []IDParam{pathID("messageReplyId", "You must specify a valid message reply ID when deleting a reply.")},
		},
		Operation{
			Name:   "create",
			Method: methodPost,
			Path:   "messages/{messageId}/messageReplies.json",
			IDs:    []IDParam{pathID("messageId", "You must specify a valid message ID when creating a message reply.")},
			Rules: []teamwork.ValidationRule{
				requiredField("body", "`body` is a required field when creating new message reply."),
			},
			Wrap: "messageReply",
		},
		Operation{
			Name:   "allForMessage",
			Method: methodGet,
			Path:   "messages/{messageId}/replies.json",
			IDs:    []IDParam{pathID("messageId", "You must specify a valid message ID when getting message replies.")},
			Key:    "messageReplies",
		},
	)
}
