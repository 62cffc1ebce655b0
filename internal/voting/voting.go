package voting

import (
	"github.com/cafebazaar/pairwise/pkg/pairwise"
)

type voting struct {
	items    []*voteItem
	comparer pairwise.ValueComparer
}

type voteItem struct {
	value interface{}
	vote  int
	data  []interface{}
}

func New(comparer pairwise.ValueComparer) pairwise.Voting {
	return &voting{comparer: comparer}
}

// Add counts weight votes for value and returns the running total of the
// group value belongs to. data identifies the voter.
func (v *voting) Add(value interface{}, data interface{}, weight int) int {
	for _, item := range v.items {
		if v.comparer(value, item.value) {
			item.vote = item.vote + weight
			item.data = append(item.data, data)
			return item.vote
		}
	}

	v.items = append(v.items, &voteItem{
		value: value,
		vote:  weight,
		data:  []interface{}{data},
	})

	return weight
}

func (v *voting) Empty() bool {
	return len(v.items) == 0
}

// Losers returns the voters of every group short of the top count.
func (v *voting) Losers() []interface{} {
	maxVoteItem := v.maxVoteItem()
	if maxVoteItem == nil {
		return nil
	}

	var result []interface{}

	for _, item := range v.items {
		if item.vote != maxVoteItem.vote {
			result = append(result, item.data...)
		}
	}

	return result
}

func (v *voting) Winners() []interface{} {
	maxVoteItem := v.maxVoteItem()
	if maxVoteItem == nil {
		return nil
	}

	return maxVoteItem.data
}

func (v *voting) MaxVote() (interface{}, int) {
	result := v.maxVoteItem()
	if result == nil {
		return nil, 0
	}

	return result.value, result.vote
}

// maxVoteItem keeps the earliest group on ties.
func (v *voting) maxVoteItem() *voteItem {
	var result *voteItem
	vote := 0

	for _, item := range v.items {
		if item.vote > vote {
			vote = item.vote
			result = item
		}
	}

	return result
}
