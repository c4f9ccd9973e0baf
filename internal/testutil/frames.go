package testutil

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// CreateSmallFrame builds the 3x2 frame used across tests:
// a (int) = 1,2,3 and b (string) = x,y,z
func CreateSmallFrame() dataframe.DataFrame {
	return dataframe.New(
		series.New([]int{1, 2, 3}, series.Int, "a"),
		series.New([]string{"x", "y", "z"}, series.String, "b"),
	)
}

// CreateUsersFrame builds a users frame with an int, a string and a bool column
func CreateUsersFrame() dataframe.DataFrame {
	return dataframe.New(
		series.New([]int{1, 2, 3, 4}, series.Int, "id"),
		series.New([]string{"alice", "bob", "charlie", "dave"}, series.String, "username"),
		series.New([]bool{true, false, true, true}, series.Bool, "is_active"),
	)
}
