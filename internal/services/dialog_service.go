package services

import (
	"context"
	"errors"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Dialogs is the native dialog surface used by user-triggered operations.
type Dialogs interface {
	SaveFile(opts runtime.SaveDialogOptions) (string, error)
	OpenFile(opts runtime.OpenDialogOptions) (string, error)
	Confirm(title, message string) (bool, error)
	Info(title, message string) error
	Error(title, message string) error
}

// DialogService shows dialogs through the Wails runtime. It is usable once
// Startup has received the application context.
type DialogService struct {
	context context.Context
}

func NewDialogService() *DialogService {
	return &DialogService{}
}

func (d *DialogService) Startup(ctx context.Context) {
	d.context = ctx
}

func (d *DialogService) ready() error {
	if d == nil || d.context == nil {
		return errors.New("dialog service is not initialized")
	}
	return nil
}

func (d *DialogService) SaveFile(opts runtime.SaveDialogOptions) (string, error) {
	if err := d.ready(); err != nil {
		return "", err
	}
	return runtime.SaveFileDialog(d.context, opts)
}

func (d *DialogService) OpenFile(opts runtime.OpenDialogOptions) (string, error) {
	if err := d.ready(); err != nil {
		return "", err
	}
	return runtime.OpenFileDialog(d.context, opts)
}

func (d *DialogService) Confirm(title, message string) (bool, error) {
	if err := d.ready(); err != nil {
		return false, err
	}
	answer, err := runtime.MessageDialog(d.context, runtime.MessageDialogOptions{
		Type:          runtime.QuestionDialog,
		Title:         title,
		Message:       message,
		Buttons:       []string{"Yes", "No"},
		DefaultButton: "No",
		CancelButton:  "No",
	})
	if err != nil {
		return false, err
	}
	return answer == "Yes" || answer == "Ok", nil
}

func (d *DialogService) Info(title, message string) error {
	return d.message(runtime.InfoDialog, title, message)
}

func (d *DialogService) Error(title, message string) error {
	return d.message(runtime.ErrorDialog, title, message)
}

func (d *DialogService) message(kind runtime.DialogType, title, message string) error {
	if err := d.ready(); err != nil {
		return err
	}
	_, err := runtime.MessageDialog(d.context, runtime.MessageDialogOptions{
		Type:    kind,
		Title:   title,
		Message: message,
	})
	return err
}
