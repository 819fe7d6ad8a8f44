package bridge

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"keyforest/internal/models"
	"keyforest/internal/services"
)

// Response is the envelope every bound call returns to the webview.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// API is bound to the webview. Each method wraps one Operation and never
// lets an error escape as anything but a failed Response.
type API struct {
	ops     Operations
	log     *zap.Logger
	context context.Context
}

func NewAPI(ops Operations, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{ops: ops, log: log, context: context.Background()}
}

func (a *API) Startup(ctx context.Context) {
	a.context = ctx
}

// call runs fn and converts its outcome, including a panic, into a Response.
func (a *API) call(op string, fn func() (any, error)) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error(op+" panicked", zap.Any("panic", r))
			resp = Response{Success: false, Error: fmt.Sprintf("%s: unexpected failure: %v", op, r)}
		}
	}()

	data, err := fn()
	if err != nil {
		if IsCanceled(err) {
			a.log.Debug(op + " canceled")
		} else {
			a.log.Error(op+" failed", zap.Error(err))
		}
		return Response{Success: false, Error: ErrorMessage(err)}
	}
	return Response{Success: true, Data: data}
}

func (a *API) SaveShortcuts(appID string, shortcuts models.ShortcutSet) Response {
	return a.call("save-shortcuts", func() (any, error) {
		return nil, a.ops.SaveShortcuts(a.context, appID, shortcuts)
	})
}

func (a *API) LoadShortcuts(appID string) Response {
	return a.call("load-shortcuts", func() (any, error) {
		return a.ops.LoadShortcuts(a.context, appID)
	})
}

func (a *API) GetApps() Response {
	return a.call("get-apps", func() (any, error) {
		return a.ops.GetApps(a.context)
	})
}

func (a *API) SaveApp(app models.Profile) Response {
	return a.call("save-app", func() (any, error) {
		return nil, a.ops.SaveApp(a.context, app)
	})
}

func (a *API) DeleteApp(appID string) Response {
	return a.call("delete-app", func() (any, error) {
		return nil, a.ops.DeleteApp(a.context, appID)
	})
}

func (a *API) ExportShortcuts(doc models.ExportDocument) Response {
	return a.call("export-shortcuts", func() (any, error) {
		return a.ops.ExportShortcuts(a.context, &doc)
	})
}

func (a *API) ImportShortcuts() Response {
	return a.call("import-shortcuts", func() (any, error) {
		return a.ops.ImportShortcuts(a.context)
	})
}

func (a *API) MigrateAppsData() Response {
	resp := a.call("migrate-apps-data", func() (any, error) {
		return a.ops.MigrateAppsData(a.context)
	})
	if res, ok := resp.Data.(services.MigrationResult); ok {
		resp.Message = res.Message
	}
	return resp
}
