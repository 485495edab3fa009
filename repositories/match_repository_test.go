package repositories

import (
	"strings"
	"testing"
)

// Запросы на чтение матчей склеиваются из matchSelect, поэтому проверяем,
// что ключевые слова SQL разделены пробельными символами после склейки.
func TestMatchSelectComposition(t *testing.T) {
	queries := map[string]string{
		"get by id":            matchSelect + ` WHERE id = $1`,
		"list by championship": matchSelect + ` WHERE 1=1 AND championship_id = $1 ORDER BY round ASC, date ASC, id ASC`,
		"list by stage": matchSelect + `
			WHERE championship_id = $1 AND cup_stage = $2
			ORDER BY date ASC, id ASC`,
	}

	for name, query := range queries {
		tokens := strings.Fields(query)
		seen := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			seen[strings.TrimSuffix(tok, ",")] = true
		}
		for _, keyword := range []string{"SELECT", "FROM", "matches", "WHERE", "created_at"} {
			if !seen[keyword] {
				t.Errorf("%s: keyword %q is not a separate token in %q", name, keyword, query)
			}
		}
		if strings.Contains(query, "created_atFROM") {
			t.Errorf("%s: column list is glued to FROM in %q", name, query)
		}
	}
}
