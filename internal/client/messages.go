package client

import (
	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// NewMessages creates the messages resource. Messages are "posts" on the wire.
func NewMessages(httpClient *http.Client) *Resource {
	return NewResource("messages", httpClient,
		Operation{Name: "all", Method: methodGet, Path: "posts.json", Key: "posts"},
		Operation{
			Name:   "get",
			Method: methodGet,
			Path:   "posts/{messageId}.json",
			IDs:    []IDParam{pathID("messageId", "A valid message ID is required when trying to get a message by ID.")},
			Key:    "post",
		},
		Operation{
			Name:   "create",
			Method: methodPost,
			Path:   "projects/{projectId}/posts.json",
			IDs:    []IDParam{pathID("projectId", "A valid project ID is required when trying to create a message.")},
			Rules: []teamwork.ValidationRule{
				requiredField("title", "`title` is a required field when creating new message."),
				requiredField("body", "`body` is a required field when creating new message."),
			},
			Wrap: "post",
		},
		Operation{
			Name:   "allForProjectCategory",
			Method: methodGet,
			Path:   "projects/{projectId}/cat/{categoryId}/posts.json",
			IDs: []IDParam{
				pathID("projectId", "A valid project ID is required when getting messages for a project category."),
				pathID("categoryId", "A valid category ID is required when getting messages for a project category."),
			},
			Key: "posts",
		},
		Operation{
			Name:   "latestForProject",
			Method: methodGet,
			Path:   "projects/{projectId}/posts.json",
			IDs:    []IDParam{pathID("projectId", "A valid project ID is required when getting messages for a project.")},
			Key:    "posts",
		},
		Operation{
			Name:   "update",
			Method: methodPut,
			Path:   "messages/{messageId}.json",
			IDs:    []IDParam{pathID("messageId", "You must specify a valid message ID when updating a message.")},
			Wrap:   "post",
		},
		Operation{
			Name:   "delete",
			Method: methodDelete,
			Path:   "messages/{messageId}.json",
			IDs:    []IDParam{pathID("messageId", "You must specify a valid message ID when deleting a message.")},
		},
		Operation{
			Name:   "markRead",
			Method: methodPut,
			Path:   "messages/{messageId}/markread.json",
			IDs:    []IDParam{pathID("messageId", "You must specify a valid message ID when marking a message as read.")},
		},
		Operation{
			Name:   "archive",
			Method: methodPut,
			Path:   "messages/{messageId}/archive.json",
			IDs:    []IDParam{pathID("messageId", "You must specify a valid message ID when marking a message as archived.")},
		},
		Operation{
			Name:   "unarchive",
			Method: methodPut,
			Path:   "messages/{messageId}/unarchive.json",
			IDs:    []IDParam{pathID("messageId", "You must specify a valid message ID when marking a message as unarchived.")},
		},
		Operation{
			Name:   "createReply",
			Method: methodPost,
			Path:   "messages/{messageId}/messageReplies.json",
			IDs:    []IDParam{pathID("messageId", "You must specify a valid message ID when creating message replies.")},
			Rules: []teamwork.ValidationRule{
				requiredField("body", "`body` is a required field when creating new message reply."),
			},
			Wrap: "messageReply",
		},
		Operation{
			Name:   "getReplies",
			Method: methodGet,
			Path:   "messages/{messageId}/replies.json",
			IDs:    []IDParam{pathID("messageId", "You must specify a valid message ID when getting message replies.")},
			Key:    "messageReplies",
		},
	)
}
