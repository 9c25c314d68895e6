package cli

import (
	"context"

	"github.com/dmitrijs2005/qradmin/internal/admin/listing"
	"github.com/dmitrijs2005/qradmin/internal/admin/models"
	"github.com/dmitrijs2005/qradmin/internal/admin/preview"
	"github.com/dmitrijs2005/qradmin/internal/admin/views"
)

type landingPageGetter interface {
	GetByID(ctx context.Context, id string) (models.LandingPage, error)
}

func newUserScreen(a *App, ctrl *listing.Controller[models.User, models.UserPatch]) *listScreen[models.User, models.UserPatch] {
	return &listScreen[models.User, models.UserPatch]{
		app:      a,
		resource: "users",
		ctrl:     ctrl,
		render:   views.UsersTable,
		form:     a.userForm,
	}
}

func (a *App) userForm(u models.User) (models.UserPatch, error) {
	var p models.UserPatch
	name, err := a.promptDefault("Name", u.Name)
	if err != nil {
		return p, err
	}
	email, err := a.promptDefault("Email", u.Email)
	if err != nil {
		return p, err
	}
	role, err := a.promptDefault("Role (user/admin)", u.Role)
	if err != nil {
		return p, err
	}
	active, err := a.promptBool("Active", u.IsActive)
	if err != nil {
		return p, err
	}
	return models.UserPatch{Name: &name, Email: &email, Role: &role, IsActive: &active}, nil
}

func newQRCodeScreen(a *App, ctrl *listing.Controller[models.QRCode, models.QRCodePatch]) *listScreen[models.QRCode, models.QRCodePatch] {
	return &listScreen[models.QRCode, models.QRCodePatch]{
		app:      a,
		resource: "qrCodes",
		ctrl:     ctrl,
		render:   views.QRCodesTable,
		form:     a.qrCodeForm,
		detail: func(ctx context.Context, q models.QRCode) (string, error) {
			d, err := a.stats.QRCodeDetails(ctx, q.ID)
			if err != nil {
				return "", err
			}
			return views.QRCodeDetail(d), nil
		},
	}
}

func (a *App) qrCodeForm(q models.QRCode) (models.QRCodePatch, error) {
	var p models.QRCodePatch
	name, err := a.promptDefault("Name", q.Name)
	if err != nil {
		return p, err
	}
	desc, err := a.promptDefault("Description", q.Description)
	if err != nil {
		return p, err
	}
	active, err := a.promptBool("Active", q.IsActive)
	if err != nil {
		return p, err
	}
	return models.QRCodePatch{Name: &name, Description: &desc, IsActive: &active}, nil
}

func newLandingPageScreen(a *App, ctrl *listing.Controller[models.LandingPage, models.LandingPagePatch], pages landingPageGetter) *listScreen[models.LandingPage, models.LandingPagePatch] {
	return &listScreen[models.LandingPage, models.LandingPagePatch]{
		app:      a,
		resource: "landingPages",
		ctrl:     ctrl,
		render:   views.LandingPagesTable,
		form:     a.landingPageForm,
		detail: func(ctx context.Context, lp models.LandingPage) (string, error) {
			full, err := pages.GetByID(ctx, lp.ID)
			if err != nil {
				return "", err
			}
			return views.LandingPreview(full, preview.Particles(a.rnd)), nil
		},
	}
}

func (a *App) landingPageForm(lp models.LandingPage) (models.LandingPagePatch, error) {
	var p models.LandingPagePatch
	name, err := a.promptDefault("Name", lp.Name)
	if err != nil {
		return p, err
	}
	title, err := a.promptDefault("Title", lp.Title)
	if err != nil {
		return p, err
	}
	subtitle, err := a.promptDefault("Subtitle", lp.Subtitle)
	if err != nil {
		return p, err
	}
	desc, err := a.promptDefault("Description", lp.Description)
	if err != nil {
		return p, err
	}
	active, err := a.promptBool("Active", lp.IsActive)
	if err != nil {
		return p, err
	}
	return models.LandingPagePatch{Name: &name, Title: &title, Subtitle: &subtitle, Description: &desc, IsActive: &active}, nil
}
