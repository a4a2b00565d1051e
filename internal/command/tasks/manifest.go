package tasks

import (
	"io"
	"strings"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Manifest struct {
	Tasks []ManifestTask `yaml:"tasks"`
}

type ManifestTask struct {
	ID          string `yaml:"id,omitempty"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Status      string `yaml:"status,omitempty"`
}

func toManifestTask(t model.Task) ManifestTask {
	return ManifestTask{
		ID:          string(t.ID()),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      string(t.Status()),
	}
}

// Task converts the manifest entry to a task, generating an identifier
// when none is given.
func (t ManifestTask) Task() (*model.BaseTask, error) {
	title := strings.TrimSpace(t.Title)
	if title == "" {
		return nil, errors.New("task title is required")
	}

	status := model.TaskStatusPending
	if t.Status != "" {
		status = model.TaskStatus(t.Status)
	}

	if !status.Valid() {
		return nil, errors.Errorf("invalid status '%s' for task '%s'", t.Status, title)
	}

	id := model.TaskID(t.ID)
	if id == "" {
		id = model.NewTaskID()
	}

	return model.NewTask(id, title,
		model.WithTaskDescription(t.Description),
		model.WithTaskStatus(status),
	), nil
}

func DecodeManifest(r io.Reader) (*Manifest, error) {
	var manifest Manifest

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&manifest); err != nil {
		if errors.Is(err, io.EOF) {
			return &manifest, nil
		}

		return nil, errors.WithStack(err)
	}

	return &manifest, nil
}
