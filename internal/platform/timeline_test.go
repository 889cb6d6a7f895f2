package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btc-projection/internal/model"
)

func TestUsersTimeline_Closure(t *testing.T) {
	specs := []model.TimelineSpec{
		{UserStarts: 100, UserEnds: 10000, Growth: model.GrowthLinear, Years: 5},
		{UserStarts: 100, UserEnds: 10000, Growth: model.GrowthExponential, Years: 5},
		{UserStarts: 7, UserEnds: 9999, Growth: model.GrowthLinear, Years: 3.25},
		{UserStarts: 7, UserEnds: 9999, Growth: model.GrowthExponential, Years: 3.25},
		{UserStarts: 50, UserEnds: 50, Growth: model.GrowthLinear, Years: 2},
		{UserStarts: 50, UserEnds: 50, Growth: model.GrowthExponential, Years: 2},
	}
	for _, spec := range specs {
		spec := spec
		t.Run(string(spec.Growth), func(t *testing.T) {
			points, err := UsersTimeline(spec)
			require.NoError(t, err)
			require.Len(t, points, spec.Months()+1)

			assert.Equal(t, 0, points[0].Month)
			assert.Equal(t, 0, points[0].NewUsers)
			assert.Equal(t, spec.UserStarts, points[0].TotalUsers)

			sum := 0
			running := spec.UserStarts
			for _, p := range points[1:] {
				assert.GreaterOrEqual(t, p.NewUsers, 0)
				sum += p.NewUsers
				running += p.NewUsers
				assert.Equal(t, running, p.TotalUsers)
			}
			assert.Equal(t, spec.UserEnds-spec.UserStarts, sum)
			assert.Equal(t, spec.UserEnds, points[len(points)-1].TotalUsers)
		})
	}
}

func TestUsersTimeline_LinearIsEven(t *testing.T) {
	points, err := UsersTimeline(model.TimelineSpec{
		UserStarts: 10, UserEnds: 130, Growth: model.GrowthLinear, Years: 1,
	})
	require.NoError(t, err)
	for _, p := range points[1:] {
		assert.Equal(t, 10, p.NewUsers)
	}
}

func TestUsersTimeline_ExponentialAccelerates(t *testing.T) {
	points, err := UsersTimeline(model.TimelineSpec{
		UserStarts: 100, UserEnds: 100000, Growth: model.GrowthExponential, Years: 5,
	})
	require.NoError(t, err)

	firstHalf, secondHalf := 0, 0
	mid := len(points) / 2
	for i, p := range points[1:] {
		if i+1 < mid {
			firstHalf += p.NewUsers
		} else {
			secondHalf += p.NewUsers
		}
	}
	assert.Greater(t, secondHalf, firstHalf)
}

func TestUsersTimeline_InvalidSpec(t *testing.T) {
	_, err := UsersTimeline(model.TimelineSpec{UserStarts: 0, UserEnds: 10, Growth: model.GrowthLinear, Years: 1})
	assert.Error(t, err)

	_, err = UsersTimeline(model.TimelineSpec{UserStarts: 10, UserEnds: 5, Growth: model.GrowthLinear, Years: 1})
	assert.Error(t, err)

	_, err = UsersTimeline(model.TimelineSpec{UserStarts: 10, UserEnds: 20, Growth: "quadratic", Years: 1})
	assert.Error(t, err)

	_, err = UsersTimeline(model.TimelineSpec{UserStarts: 10, UserEnds: 20, Growth: model.GrowthLinear, Years: -1})
	assert.Error(t, err)
}
