package find_slots

import (
	"sort"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// maxSuggestions сколько вариантов рассадки возвращается
const maxSuggestions = 3

// SuggestTables варианты рассадки для компании размера party
// Сначала одиночные столы, подходящие по числу мест; если их нет и strategy = smart,
// столы одной группы объединяются жадно от меньших к большим
func SuggestTables(tables []domain.Table, party int, strategy string) []domain.TableSuggestion {
	singles := make([]domain.TableSuggestion, 0)
	for i := range tables {
		t := &tables[i]
		if t.Fits(party) {
			singles = append(singles, domain.TableSuggestion{
				TableIDs: []int64{t.ID},
				Seats:    t.Capacity(),
				Type:     domain.SuggestionSingle,
			})
		}
	}
	if len(singles) > 0 {
		return rankSuggestions(singles)
	}

	if strategy != domain.MergeStrategySmart {
		return []domain.TableSuggestion{}
	}

	return rankSuggestions(mergeSuggestions(tables, party))
}

func mergeSuggestions(tables []domain.Table, party int) []domain.TableSuggestion {
	groups := make(map[string][]domain.Table)
	for _, t := range tables {
		key := t.MergeGroupKey()
		groups[key] = append(groups[key], t)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]domain.TableSuggestion, 0)
	for _, key := range keys {
		group := groups[key]
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].MaxSeats() != group[j].MaxSeats() {
				return group[i].MaxSeats() < group[j].MaxSeats()
			}
			if group[i].Capacity() != group[j].Capacity() {
				return group[i].Capacity() < group[j].Capacity()
			}
			return group[i].ID < group[j].ID
		})

		ids := make([]int64, 0, len(group))
		seats := 0
		for _, t := range group {
			ids = append(ids, t.ID)
			seats += t.MaxSeats()
			if seats >= party {
				break
			}
		}

		// один стол - это не объединение, а неподходящий одиночный стол
		if seats < party || len(ids) < 2 {
			continue
		}

		result = append(result, domain.TableSuggestion{
			TableIDs: ids,
			Seats:    seats,
			Type:     domain.SuggestionMerge,
		})
	}

	return result
}

// rankSuggestions по возрастанию мест, затем числа столов, затем id первого стола; не больше трех
func rankSuggestions(suggestions []domain.TableSuggestion) []domain.TableSuggestion {
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Seats != b.Seats {
			return a.Seats < b.Seats
		}
		if len(a.TableIDs) != len(b.TableIDs) {
			return len(a.TableIDs) < len(b.TableIDs)
		}
		return a.TableIDs[0] < b.TableIDs[0]
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
