package repo

import (
	"github.com/AhmedSalem104/voltyks/internal/notify"
	"github.com/AhmedSalem104/voltyks/internal/pg"
	notificationrepo "github.com/AhmedSalem104/voltyks/internal/repo/notification-repo"
	processrepo "github.com/AhmedSalem104/voltyks/internal/repo/process-repo"
	ratingrepo "github.com/AhmedSalem104/voltyks/internal/repo/rating-repo"
	reportrepo "github.com/AhmedSalem104/voltyks/internal/repo/report-repo"
	requestrepo "github.com/AhmedSalem104/voltyks/internal/repo/request-repo"
	userrepo "github.com/AhmedSalem104/voltyks/internal/repo/user-repo"
	"github.com/AhmedSalem104/voltyks/internal/service/processservice"
)

// UserRepo covers activity bookkeeping and device token lookups on users.
type UserRepo interface {
	processservice.UserRepo
	notify.TokenRepo
}

type Repositories struct {
	RequestRepo      processservice.RequestRepo
	ProcessRepo      processservice.ProcessRepo
	RatingRepo       processservice.RatingRepo
	UserRepo         UserRepo
	ReportRepo       processservice.ReportRepo
	NotificationRepo notify.NotificationRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		RequestRepo:      requestrepo.New(conn),
		ProcessRepo:      processrepo.New(conn, txManager),
		RatingRepo:       ratingrepo.New(conn, txManager),
		UserRepo:         userrepo.New(conn),
		ReportRepo:       reportrepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
	}
}

// Lifecycle returns the repositories the process lifecycle works on.
func (r *Repositories) Lifecycle() processservice.Repos {
	return processservice.Repos{
		Requests:  r.RequestRepo,
		Processes: r.ProcessRepo,
		Ratings:   r.RatingRepo,
		Users:     r.UserRepo,
		Reports:   r.ReportRepo,
	}
}
