package app

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/application"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/job"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/user"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUserRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[common.UUID]*user.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if strings.EqualFold(existing.Email, u.Email) {
			return nil, common.NewError(common.CodeConflict, "an account with this email already exists", nil)
		}
	}
	u.ID = common.NewUUID()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	stored := u
	r.byID[u.ID] = &stored
	return &u, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, common.NewError(common.CodeNotFound, "user not found", sql.ErrNoRows)
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "user not found", sql.ErrNoRows)
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id common.UUID, fullName, profileImage *string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "user not found", sql.ErrNoRows)
	}
	if fullName != nil {
		u.FullName = *fullName
	}
	if profileImage != nil {
		u.ProfileImage = *profileImage
	}
	u.UpdatedAt = time.Now().UTC()
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) ListEmployers(ctx context.Context) ([]user.EmployerListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []user.EmployerListing
	for _, u := range r.byID {
		if u.Role == user.RoleEmployer {
			items = append(items, user.EmployerListing{User: *u})
		}
	}
	return items, nil
}

type fakeJobRepo struct {
	mu           sync.Mutex
	byID         map[common.UUID]*job.Job
	applications *fakeApplicationRepo
	seq          int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{byID: make(map[common.UUID]*job.Job)}
}

func (r *fakeJobRepo) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = common.NewUUID()
	r.seq++
	// Spread creation times so newest-first ordering is deterministic.
	j.CreatedAt = time.Unix(int64(r.seq), 0).UTC()
	j.UpdatedAt = j.CreatedAt
	stored := j
	r.byID[j.ID] = &stored
	return &j, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[j.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	j.UpdatedAt = time.Now().UTC()
	stored := j
	r.byID[j.ID] = &stored
	return &j, nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.byID[id]; ok {
		copied := *j
		return &copied, nil
	}
	return nil, common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
}

func (r *fakeJobRepo) GetDetail(ctx context.Context, id common.UUID) (*job.Detail, error) {
	j, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &job.Detail{Job: *j}, nil
}

func (r *fakeJobRepo) List(ctx context.Context, filter job.Filter, limit, offset int) ([]job.Job, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []job.Job
	for _, j := range r.byID {
		if filter.PostedBy != nil {
			if j.PostedBy != *filter.PostedBy {
				continue
			}
		} else if !j.IsActive {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(j.Title), needle) &&
				!strings.Contains(strings.ToLower(j.Company), needle) &&
				!strings.Contains(strings.ToLower(j.Description), needle) {
				continue
			}
		}
		if filter.Type != "" && string(j.Type) != filter.Type {
			continue
		}
		if filter.Category != "" && !strings.Contains(strings.ToLower(j.Category), strings.ToLower(filter.Category)) {
			continue
		}
		if filter.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(filter.Location)) {
			continue
		}
		matched = append(matched, *j)
	}
	sort.Slice(matched, func(i, k int) bool {
		return matched[i].CreatedAt.After(matched[k].CreatedAt)
	})
	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	delete(r.byID, id)
	if r.applications != nil {
		r.applications.deleteByJob(id)
	}
	return nil
}

func (r *fakeJobRepo) IncrementApplicants(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.byID[id]; ok {
		j.ApplicantsCount++
	}
	return nil
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*application.Application
	jobs *fakeJobRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	repo := &fakeApplicationRepo{byID: make(map[common.UUID]*application.Application), jobs: jobs}
	if jobs != nil {
		jobs.applications = repo
	}
	return repo
}

func (r *fakeApplicationRepo) Create(ctx context.Context, a application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.JobID == a.JobID && existing.ApplicantID == a.ApplicantID {
			return nil, common.NewError(common.CodeConflict, "already applied to this job", nil)
		}
	}
	a.ID = common.NewUUID()
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	stored := a
	r.byID[a.ID] = &stored
	return &a, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.byID[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
}

func (r *fakeApplicationRepo) FindByJobAndApplicant(ctx context.Context, jobID, applicantID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.byID {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
}

func (r *fakeApplicationRepo) ListByApplicant(ctx context.Context, applicantID common.UUID) ([]application.Detail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Detail
	for _, a := range r.byID {
		if a.ApplicantID == applicantID {
			items = append(items, application.Detail{Application: *a})
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListByJobOwner(ctx context.Context, ownerID common.UUID) ([]application.Detail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Detail
	for _, a := range r.byID {
		j, err := r.jobs.GetByID(ctx, a.JobID)
		if err != nil {
			continue
		}
		if j.PostedBy == ownerID {
			items = append(items, application.Detail{Application: *a})
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	a.Status = status
	a.UpdatedAt = time.Now().UTC()
	copied := *a
	return &copied, nil
}

func (r *fakeApplicationRepo) deleteByJob(jobID common.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, a := range r.byID {
		if a.JobID == jobID {
			delete(r.byID, id)
		}
	}
}

func (r *fakeApplicationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}
