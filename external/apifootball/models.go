package apifootball

import (
	"fmt"
	"sort"
	"strings"
)

// envelope is the wrapper every API-Football response shares. errors is an
// empty array on success and an object keyed by problem otherwise.
type envelope[T any] struct {
	Get      string `json:"get"`
	Errors   any    `json:"errors"`
	Results  int    `json:"results"`
	Paging   paging `json:"paging"`
	Response []T    `json:"response"`
}

type paging struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

func (e envelope[T]) errorMessage() string {
	switch v := e.Errors.(type) {
	case map[string]any:
		if len(v) == 0 {
			return ""
		}
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s: %v", key, v[key]))
		}
		return strings.Join(parts, "; ")
	case []any:
		if len(v) == 0 {
			return ""
		}
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, "; ")
	case string:
		return strings.TrimSpace(v)
	default:
		return ""
	}
}

// isQuotaError reports the rate limit and daily quota errors, which clear
// on their own.
func (e envelope[T]) isQuotaError() bool {
	v, ok := e.Errors.(map[string]any)
	if !ok {
		return false
	}
	_, rateLimited := v["rateLimit"]
	_, quota := v["requests"]
	return rateLimited || quota
}

type leagueItem struct {
	League struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		Type string `json:"type"`
		Logo string `json:"logo"`
	} `json:"league"`
	Country struct {
		Name string  `json:"name"`
		Code *string `json:"code"`
		Flag *string `json:"flag"`
	} `json:"country"`
	Seasons []leagueSeason `json:"seasons"`
}

type leagueSeason struct {
	Year    int    `json:"year"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Current bool   `json:"current"`
}

type roundItem struct {
	Round string   `json:"round"`
	Dates []string `json:"dates"`
}

type standingsItem struct {
	League struct {
		ID        int64           `json:"id"`
		Season    int             `json:"season"`
		Standings [][]standingRow `json:"standings"`
	} `json:"league"`
}

type standingRow struct {
	Rank        int       `json:"rank"`
	Team        teamBrief `json:"team"`
	Points      int       `json:"points"`
	GoalsDiff   int       `json:"goalsDiff"`
	Group       string    `json:"group"`
	Form        *string   `json:"form"`
	Description *string   `json:"description"`
	All         struct {
		Played int `json:"played"`
		Win    int `json:"win"`
		Draw   int `json:"draw"`
		Lose   int `json:"lose"`
		Goals  struct {
			For     int `json:"for"`
			Against int `json:"against"`
		} `json:"goals"`
	} `json:"all"`
}

type teamBrief struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type fixtureItem struct {
	Fixture struct {
		ID        int64   `json:"id"`
		Referee   *string `json:"referee"`
		Date      string  `json:"date"`
		Timestamp int64   `json:"timestamp"`
		Venue     struct {
			Name *string `json:"name"`
			City *string `json:"city"`
		} `json:"venue"`
		Status struct {
			Long    string `json:"long"`
			Short   string `json:"short"`
			Elapsed *int   `json:"elapsed"`
		} `json:"status"`
	} `json:"fixture"`
	League struct {
		ID     int64  `json:"id"`
		Season int    `json:"season"`
		Round  string `json:"round"`
	} `json:"league"`
	Teams struct {
		Home teamBrief `json:"home"`
		Away teamBrief `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
}

type teamItem struct {
	Team struct {
		ID      int64   `json:"id"`
		Name    string  `json:"name"`
		Code    *string `json:"code"`
		Country *string `json:"country"`
		Founded *int    `json:"founded"`
		Logo    string  `json:"logo"`
	} `json:"team"`
	Venue struct {
		Name     *string `json:"name"`
		City     *string `json:"city"`
		Capacity *int    `json:"capacity"`
	} `json:"venue"`
}

type scorerItem struct {
	Player struct {
		ID          int64   `json:"id"`
		Name        string  `json:"name"`
		Nationality *string `json:"nationality"`
		Photo       string  `json:"photo"`
	} `json:"player"`
	Statistics []scorerStatistics `json:"statistics"`
}

type scorerStatistics struct {
	Team   teamBrief `json:"team"`
	League struct {
		ID int64 `json:"id"`
	} `json:"league"`
	Games struct {
		Appearances *int `json:"appearences"`
	} `json:"games"`
	Goals struct {
		Total   *int `json:"total"`
		Assists *int `json:"assists"`
	} `json:"goals"`
}
