// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package semantic

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/jsdmbrs/internal/diag"
	"github.com/specialistvlad/jsdmbrs/internal/model"
	"github.com/specialistvlad/jsdmbrs/internal/syntax"
)

// VisitDatabase checks the database block and records it on the model.
func (b *builder) VisitDatabase(db *syntax.Database) error {
	b.logger.Debug("Starting semantic checks for database.", "driver", db.Driver.Value)

	dialect, ok := model.DialectFor(db.Driver.Value)
	if !ok {
		return fmt.Errorf("database driver %q has no dialect", db.Driver.Value)
	}
	display := dialect.DisplayName

	name := db.Name.Value
	if !databaseNameRe.MatchString(name) {
		return b.fail(diag.ErrDatabaseName, syntax.Range(db.Name.Pos, db.Name.EndPos), diag.Token(name),
			msgDatabaseName, display, name, explainDatabaseName)
	}

	out := &model.Database{
		Driver:  db.Driver.Value,
		Name:    name,
		Dialect: dialect,
		Range:   syntax.Range(db.Pos, db.EndPos),
	}

	if c := db.Credentials; c != nil {
		user, pass := c.Username.Value, c.Password.Value
		if !databaseUsernameRe.MatchString(user) {
			return b.fail(diag.ErrDatabaseUsername, syntax.Range(c.Username.Pos, c.Username.EndPos), diag.Token(user),
				msgDatabaseUsername, display, user, explainDatabaseUsername)
		}
		if !validPassword(pass) {
			return b.fail(diag.ErrDatabasePassword, syntax.Range(c.Password.Pos, c.Password.EndPos), diag.Token(pass),
				msgDatabasePassword, display, pass, explainDatabasePassword)
		}
		out.Credentials = &model.Credentials{Username: user, Password: pass}
	}

	if existing := b.opts.Project.ExistingDriver; existing != "" {
		if have := driverDisplayName(existing); !strings.EqualFold(have, display) {
			return b.fail(diag.ErrDatabaseDriver, syntax.Range(db.Driver.Pos, db.Driver.EndPos), diag.Token(db.Driver.Value),
				msgDatabaseDriver, have, display)
		}
	}

	b.model.Database = out
	return nil
}

// driverDisplayName accepts either a driver keyword or a display name.
func driverDisplayName(driver string) string {
	if d, ok := model.DialectFor(strings.ToLower(driver)); ok {
		return d.DisplayName
	}
	return driver
}
