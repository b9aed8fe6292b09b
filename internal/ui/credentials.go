package ui

import (
	"log/slog"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-swipecal/internal/config"
	"github.com/zalando/go-keyring"
)

// ShowCredentialsDialog asks for the marker feed password and stores it in
// the OS keyring. The user name comes from the options file.
func (app *SwipeCalApp) ShowCredentialsDialog() {
	user := app.Options().Markers.User
	if user == "" || app.Window == nil {
		return
	}
	tr := app.Translator

	passEntry := widget.NewPasswordEntry()
	// Attempt to pre-fill password from secure storage
	if pwd, err := keyring.Get(config.KeyringService, user); err == nil {
		passEntry.SetText(pwd)
	}

	items := []*widget.FormItem{
		widget.NewFormItem(tr.Msg(config.TKeyLblPassword), passEntry),
	}
	d := dialog.NewForm(tr.Msg(config.TKeyBtnCredentials), tr.Msg(config.TKeyBtnSave), tr.Msg(config.TKeyBtnCancel), items,
		func(ok bool) {
			if ok {
				app.SaveCredentials(user, passEntry.Text)
			}
		}, app.Window)
	d.Show()
}

// SaveCredentials stores pass for user and reloads the markers.
func (app *SwipeCalApp) SaveCredentials(user, pass string) {
	if err := keyring.Set(config.KeyringService, user, pass); err != nil {
		slog.Error(config.MsgPassSaveFail,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyUser, user,
			config.LogKeyError, err)
		return
	}
	slog.Info(config.MsgPassSaved,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyUser, user)

	select {
	case app.configChan <- struct{}{}:
	default:
	}
}
