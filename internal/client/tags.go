package client

import (
	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// TagTypes are the resource types that carry tags.
var TagTypes = []string{
	"companies", "files", "messages", "milestones", "notebooks",
	"projects", "tasklists", "tasks", "timelogs", "users", "links",
}

// TagColors are the hex colors the API accepts for a tag.
var TagColors = []string{
	"#d84640", "#f78234", "#f4bd38", "#b1da34", "#53c944", "#37ced0",
	"#2f8de4", "#9b7cdb", "#f47fbe", "#a6a6a6", "#4d4d4d", "#9e6957",
}

// TagColorNames maps color names to their hex value. Matching is exact.
var TagColorNames = map[string]string{
	"red":          "#d84640",
	"red-orange":   "#f78234",
	"orange":       "#f4bd38",
	"yellow-green": "#b1da34",
	"green":        "#53c944",
	"cyan":         "#37ced0",
	"blue":         "#2f8de4",
	"purple":       "#9b7cdb",
	"pink":         "#f47fbe",
	"gray":         "#a6a6a6",
	"grey":         "#a6a6a6",
	"slate":        "#4d4d4d",
	"brown":        "#9e6957",
}

// NewTags creates the tags resource.
func NewTags(httpClient *http.Client) *Resource {
	return NewResource("tags", httpClient,
		Operation{
			Name:   "get",
			Method: methodGet,
			Path:   "tags/{tagId}.json",
			IDs:    []IDParam{pathID("tagId", "You must specify a valid tag ID when getting a tag.")},
			Key:    "tag",
		},
		Operation{Name: "all", Method: methodGet, Path: "tags.json", Key: "tags"},
		Operation{
			Name:   "allForTagType",
			Method: methodGet,
			Path:   "{tagType}/tags.json",
			IDs: []IDParam{{
				Name:         "tagType",
				OneOf:        TagTypes,
				OneOfMessage: "The tag type specified is invalid: ",
			}},
			Key: "tags",
		},
		Operation{
			Name:    "create",
			Method:  methodPost,
			Path:    "tags.json",
			Prepare: translateTagColor,
			Rules: []teamwork.ValidationRule{
				requiredField("name", "`name` is a required field when creating a tag."),
				{
					Field:           "color",
					Required:        true,
					RequiredMessage: "`color` is a required field when creating a tag.",
					AllowedValues:   stringsToAny(TagColors),
					AllowedMessage:  "`color` must be one of the valid hex colors.",
				},
			},
			Wrap: "tag",
			Pick: []string{"name", "color"},
		},
		Operation{
			Name:   "update",
			Method: methodPut,
			Path:   "tags/{tagId}.json",
			IDs:    []IDParam{pathID("tagId", "You must specify a valid tag ID when updating a tag.")},
			Wrap:   "tag",
		},
		Operation{
			Name:   "delete",
			Method: methodDelete,
			Path:   "tags/{tagId}.json",
			IDs:    []IDParam{pathID("tagId", "You must specify a valid tag ID when deleting a tag.")},
		},
	)
}

// TranslateTagColor returns the hex value for a color name, or color unchanged.
func TranslateTagColor(color string) string {
	if hex, ok := TagColorNames[color]; ok {
		return hex
	}

	return color
}

func translateTagColor(params teamwork.Params) teamwork.Params {
	if color, ok := params["color"].(string); ok {
		params["color"] = TranslateTagColor(color)
	}

	return params
}

func stringsToAny(values []string) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}

	return out
}
