package client

import (
	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// CommentResourceTypes are the resource types that accept comments.
var CommentResourceTypes = []string{"links", "milestones", "files", "notebooks", "tasks"}

var commentResourceType = IDParam{
	Name:         "resourceType",
	OneOf:        CommentResourceTypes,
	OneOfMessage: "The resource type specified is invalid: ",
}

// NewComments creates the comments resource. Listing and creating comments
// take the parent resource type and ID.
func NewComments(httpClient *http.Client) *Resource {
	return NewResource("comments", httpClient,
		Operation{
			Name:   "recent",
			Method: methodGet,
			Path:   "{resourceType}/{resourceId}/comments.json",
			IDs: []IDParam{
				commentResourceType,
				pathID("resourceId", "You must specify a resource ID when getting recent comments"),
			},
			Key: "comments",
		},
		Operation{
			Name:   "create",
			Method: methodPost,
			Path:   "{resourceType}/{resourceId}/comments.json",
			IDs: []IDParam{
				commentResourceType,
				pathID("resourceId", "You must specify a resource ID when creating a comment"),
			},
			Rules: []teamwork.ValidationRule{
				requiredField("body", "`body` is a required field when creating new comment."),
			},
			Wrap: "comment",
		},
		Operation{
			Name:   "get",
			Method: methodGet,
			Path:   "comments/{commentId}.json",
			IDs:    []IDParam{pathID("commentId", "You must specify a valid comment ID when getting a comment.")},
			Key:    "comment",
		},
		Operation{
			Name:   "update",
			Method: methodPut,
			Path:   "comments/{commentId}.json",
			IDs:    []IDParam{pathID("commentId", "You must specify a valid comment ID when updating a comment.")},
			Rules: []teamwork.ValidationRule{
				requiredField("body", "`body` is a required field when updating a comment."),
			},
			Wrap: "comment",
		},
		Operation{
			Name:   "markRead",
			Method: methodPut,
			Path:   "comments/{commentId}/markread.json",
			IDs:    []IDParam{pathID("commentId", "You must specify a valid comment ID when marking a comment as read.")},
		},
		Operation{
			Name:   "delete",
			Method: methodDelete,
			Path:   "comments/{commentId}.json",
			IDs:    []IDParam{pathID("commentId", "You must specify a valid comment ID deleting a comment.")},
		},
	)
}
