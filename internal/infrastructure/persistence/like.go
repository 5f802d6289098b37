package persistence

import (
	"strings"

	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsLike matches rows whose column contains s literally.
// Wildcards typed by users are escaped with a backslash.
func ContainsLike(column string, s string) clause.Expression {
	return clause.Expr{
		SQL:  `? LIKE ? ESCAPE '\'`,
		Vars: []any{clause.Column{Name: column}, "%" + likeEscaper.Replace(s) + "%"},
	}
}
