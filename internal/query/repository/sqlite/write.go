package sqlite

import (
	"context"
	"encoding/json"
	"time"

	"workspace-assistant/internal/model"
	repo "workspace-assistant/internal/query/repository"
)

// CreateProject inserts a project row.
func (r *implRepository) CreateProject(ctx context.Context, opt repo.CreateProjectOptions) (model.Project, error) {
	const query = `
		INSERT INTO projects (id, user_id, name, description, status, due_date, progress, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	status := opt.Status
	if status == "" {
		status = model.ProjectStatusActive
	}
	createdAt := r.createdAt(opt.CreatedAt)
	_, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID, opt.Name, opt.Description, status,
		nullable(opt.DueDate), opt.Progress, formatStored(createdAt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProject"), err)
		return model.Project{}, repo.ErrFailedToInsert
	}

	return model.Project{
		ID:          opt.ID,
		UserID:      opt.UserID,
		Name:        opt.Name,
		Description: opt.Description,
		Status:      status,
		DueDate:     opt.DueDate,
		Progress:    opt.Progress,
		CreatedAt:   createdAt,
	}, nil
}

// CreateTask inserts a task row.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, user_id, project_id, title, description, status, priority, due_date, labels, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	status := opt.Status
	if status == "" {
		status = model.TaskStatusTodo
	}
	priority := opt.Priority
	if priority == "" {
		priority = "medium"
	}
	labels := opt.Labels
	if labels == nil {
		labels = []string{}
	}
	encoded, err := json.Marshal(labels)
	if err != nil {
		r.l.Errorf(ctx, "%s labels: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	createdAt := r.createdAt(opt.CreatedAt)

	_, err = r.db.ExecContext(ctx, query, opt.ID, opt.UserID, nullable(opt.ProjectID), opt.Title, opt.Description,
		status, priority, nullable(opt.DueDate), string(encoded), formatStored(createdAt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	return model.Task{
		ID:          opt.ID,
		UserID:      opt.UserID,
		ProjectID:   opt.ProjectID,
		Title:       opt.Title,
		Description: opt.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     opt.DueDate,
		Labels:      opt.Labels,
		CreatedAt:   createdAt,
	}, nil
}

// UpsertEvent inserts an event, refreshing the existing row when the same
// user already has an event with this ExternalID.
func (r *implRepository) UpsertEvent(ctx context.Context, opt repo.UpsertEventOptions) (model.Event, error) {
	const query = `
		INSERT INTO events (id, user_id, project_id, title, description, location, start_time, end_time, all_day, external_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, external_id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			location = excluded.location,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			all_day = excluded.all_day
		RETURNING id`

	var id string
	err := r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID, nullable(opt.ProjectID), opt.Title, opt.Description,
		opt.Location, formatStored(opt.StartTime), formatStored(opt.EndTime), opt.AllDay, nullable(opt.ExternalID),
	).Scan(&id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertEvent"), err)
		return model.Event{}, repo.ErrFailedToInsert
	}

	return model.Event{
		ID:          id,
		UserID:      opt.UserID,
		ProjectID:   opt.ProjectID,
		Title:       opt.Title,
		Description: opt.Description,
		Location:    opt.Location,
		StartTime:   opt.StartTime,
		EndTime:     opt.EndTime,
		AllDay:      opt.AllDay,
		ExternalID:  opt.ExternalID,
	}, nil
}

// CreateNote inserts a note row.
func (r *implRepository) CreateNote(ctx context.Context, opt repo.CreateNoteOptions) (model.Note, error) {
	const query = `
		INSERT INTO notes (id, user_id, project_id, title, content, pinned, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	createdAt := r.createdAt(opt.CreatedAt)
	updatedAt := opt.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	_, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID, nullable(opt.ProjectID), opt.Title, opt.Content,
		opt.Pinned, formatStored(createdAt), formatStored(updatedAt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNote"), err)
		return model.Note{}, repo.ErrFailedToInsert
	}

	return model.Note{
		ID:        opt.ID,
		UserID:    opt.UserID,
		ProjectID: opt.ProjectID,
		Title:     opt.Title,
		Content:   opt.Content,
		Pinned:    opt.Pinned,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// CreateFile inserts file metadata.
func (r *implRepository) CreateFile(ctx context.Context, opt repo.CreateFileOptions) (model.File, error) {
	const query = `
		INSERT INTO files (id, user_id, name, file_type, mime_type, size, uploaded_at, project_id, task_id, event_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	uploadedAt := r.createdAt(opt.UploadedAt)
	_, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID, opt.Name, opt.FileType, opt.MimeType, opt.Size,
		formatStored(uploadedAt), nullable(opt.ProjectID), nullable(opt.TaskID), nullable(opt.EventID))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateFile"), err)
		return model.File{}, repo.ErrFailedToInsert
	}

	return model.File{
		ID:         opt.ID,
		UserID:     opt.UserID,
		Name:       opt.Name,
		FileType:   opt.FileType,
		MimeType:   opt.MimeType,
		Size:       opt.Size,
		UploadedAt: uploadedAt,
		ProjectID:  opt.ProjectID,
		TaskID:     opt.TaskID,
		EventID:    opt.EventID,
	}, nil
}

func (r *implRepository) createdAt(t time.Time) time.Time {
	if t.IsZero() {
		return r.now()
	}
	return t
}
