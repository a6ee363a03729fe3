package teamwork_test

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/stretchr/testify/assert"
)

func TestParams_Clone(t *testing.T) {
	t.Parallel()

	assert.Nil(t, teamwork.Params(nil).Clone())

	original := teamwork.Params{"name": "Website"}
	clone := original.Clone()
	clone["name"] = "Intranet"
	clone["description"] = "new"

	assert.Equal(t, teamwork.Params{"name": "Website"}, original)
}

func TestParams_Pick(t *testing.T) {
	t.Parallel()

	params := teamwork.Params{"name": "bug", "color": "#d84640", "projectId": 3}

	assert.Equal(t, teamwork.Params{"name": "bug", "color": "#d84640"}, params.Pick("name", "color", "missing"))
	assert.Equal(t, teamwork.Params{}, teamwork.Params(nil).Pick("name"))
}

func TestQuery(t *testing.T) {
	t.Parallel()

	query := teamwork.NewQuery().Add("page", 1).Add("status", "active").Add("page", 2)

	assert.Len(t, query, 3)
	assert.Equal(t, "page", query[0].Key)
	assert.Equal(t, "status", query[1].Key)

	value, ok := query.Get("page")
	assert.True(t, ok)
	assert.Equal(t, 1, value)

	_, ok = query.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, teamwork.Params{"page": 1, "status": "active"}, query.Params())
	assert.Equal(t, teamwork.Params{}, teamwork.Query(nil).Params())
}

func TestOperationFromContext(t *testing.T) {
	t.Parallel()

	_, ok := teamwork.OperationFromContext(context.Background())
	assert.False(t, ok)

	info, ok := teamwork.OperationFromContext(teamwork.WithOperation(context.Background(), "people", "get"))
	assert.True(t, ok)
	assert.Equal(t, teamwork.OperationInfo{Resource: "people", Operation: "get"}, info)
}
