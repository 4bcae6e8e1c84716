// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import "github.com/hashicorp/hcl/v2"

// Database is the optional database block.
type Database struct {
	Driver      string
	Name        string
	Credentials *Credentials
	Dialect     Dialect
	Range       hcl.Range
}

// Credentials are the optional database login.
type Credentials struct {
	Username string
	Password string
}

// Dialect describes how the generated backend talks to a driver.
type Dialect struct {
	DisplayName string
	URL         string
	DriverClass string
	Hibernate   string
}

var dialects = map[string]Dialect{
	"postgresql": {
		DisplayName: "PostgreSQL",
		URL:         "jdbc:postgresql://localhost:5432/",
		DriverClass: "org.postgresql.Driver",
		Hibernate:   "org.hibernate.dialect.PostgreSQLDialect",
	},
	"mysql": {
		DisplayName: "MySQL",
		URL:         "jdbc:mysql://localhost:3306/",
		DriverClass: "com.mysql.cj.jdbc.Driver",
		Hibernate:   "org.hibernate.dialect.MySQL8Dialect",
	},
	"sqlserver": {
		DisplayName: "MS SQL Server",
		URL:         "jdbc:sqlserver://localhost:1433;databaseName=",
		DriverClass: "com.microsoft.sqlserver.jdbc.SQLServerDriver",
		Hibernate:   "org.hibernate.dialect.SQLServer2012Dialect",
	},
	"oracle": {
		DisplayName: "Oracle",
		URL:         "jdbc:oracle:thin:@localhost:1521:",
		DriverClass: "oracle.jdbc.OracleDriver",
		Hibernate:   "org.hibernate.dialect.Oracle12cDialect",
	},
}

// DialectFor returns the dialect of a driver keyword.
func DialectFor(driver string) (Dialect, bool) {
	d, ok := dialects[driver]
	return d, ok
}
