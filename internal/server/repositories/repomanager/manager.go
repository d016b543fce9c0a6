package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/realtyhub/internal/dbx"
	"github.com/dmitrijs2005/realtyhub/internal/server/repositories/buildings"
	"github.com/dmitrijs2005/realtyhub/internal/server/repositories/companies"
	"github.com/dmitrijs2005/realtyhub/internal/server/repositories/properties"
	"github.com/dmitrijs2005/realtyhub/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/realtyhub/internal/server/repositories/userproperties"
	"github.com/dmitrijs2005/realtyhub/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tokens(db dbx.DBTX) tokens.Repository
	Companies(db dbx.DBTX) companies.Repository
	Buildings(db dbx.DBTX) buildings.Repository
	Properties(db dbx.DBTX) properties.Repository
	UserProperties(db dbx.DBTX) userproperties.Repository
}
