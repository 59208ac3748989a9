// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestToPgx5DSN verifies scheme rewriting for golang-migrate.
*/
func TestToPgx5DSN(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@localhost:5432/folio?sslmode=disable": "pgx5://u:p@localhost:5432/folio?sslmode=disable",
		"postgresql://u:p@db/folio":                           "pgx5://u:p@db/folio",
		"pgx5://u:p@db/folio":                                 "pgx5://u:p@db/folio",
		"host=db user=u":                                      "host=db user=u",
	}

	for in, want := range tests {
		assert.Equal(t, want, toPgx5DSN(in), in)
	}
}
