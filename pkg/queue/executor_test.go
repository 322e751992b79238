package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-ai/nexus/ent"
	"github.com/nexus-ai/nexus/ent/task"
	"github.com/nexus-ai/nexus/pkg/models"
)

type runnerCall struct {
	method       string
	projectID    string
	stage        string
	toCompletion bool
}

type fakeRunner struct {
	calls  []runnerCall
	result *models.ExecutionResult
	err    error
}

func (f *fakeRunner) ExecuteToCompletion(_ context.Context, projectID string) (*models.ExecutionResult, error) {
	f.calls = append(f.calls, runnerCall{method: "completion", projectID: projectID})
	return f.result, f.err
}

func (f *fakeRunner) ExecuteFromStage(_ context.Context, projectID, stageName string, toCompletion bool) (*models.ExecutionResult, error) {
	f.calls = append(f.calls, runnerCall{method: "from_stage", projectID: projectID, stage: stageName, toCompletion: toCompletion})
	return f.result, f.err
}

type fakeProjects struct {
	projects map[string]*models.Project
}

func newFakeProjects(ps ...*models.Project) *fakeProjects {
	f := &fakeProjects{projects: make(map[string]*models.Project)}
	for _, p := range ps {
		cp := *p
		f.projects[p.ID] = &cp
	}
	return f
}

func (f *fakeProjects) GetProject(_ context.Context, projectID string) (*models.Project, error) {
	p, ok := f.projects[projectID]
	if !ok {
		return nil, errors.New("project not found")
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProjects) SaveProject(_ context.Context, p *models.Project) error {
	cp := *p
	f.projects[p.ID] = &cp
	return nil
}

func (f *fakeProjects) GetControlStatus(_ context.Context, projectID string) (models.ControlStatus, error) {
	p, err := f.GetProject(context.Background(), projectID)
	if err != nil {
		return "", err
	}
	return p.ControlStatus, nil
}

type fakeDeployer struct {
	summary string
	err     error
	calls   []string
}

func (f *fakeDeployer) DeployProject(_ context.Context, projectID string) (string, error) {
	f.calls = append(f.calls, projectID)
	return f.summary, f.err
}

type fakeFileSync struct {
	ensureCalls [][]string
	ensureErr   error
	pushCalls   []string
	pushErr     error
}

func (f *fakeFileSync) EnsureFilesAvailable(_ context.Context, _ *models.Project, required []string) error {
	f.ensureCalls = append(f.ensureCalls, append([]string(nil), required...))
	return f.ensureErr
}

func (f *fakeFileSync) SyncToS3(_ context.Context, p *models.Project) (int, error) {
	f.pushCalls = append(f.pushCalls, p.ID)
	if f.pushErr != nil {
		return 0, f.pushErr
	}
	return len(f.pushCalls), nil
}

type fakeStageLister struct {
	records []*models.StageRecord
	err     error
}

func (f *fakeStageLister) ListStages(context.Context, string) ([]*models.StageRecord, error) {
	return f.records, f.err
}

type fakeTaskCreator struct {
	created []models.TaskMessage
	err     error
}

func (f *fakeTaskCreator) CreateQueued(_ context.Context, msg models.TaskMessage) (*models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, msg)
	return &models.Task{ID: "deploy-1", Type: msg.TaskType, ProjectID: msg.ProjectID}, nil
}

func taskPayload(t *testing.T, msg models.TaskMessage) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &payload))
	return payload
}

func buildTask(t *testing.T, msg models.TaskMessage) *ent.Task {
	t.Helper()
	return &ent.Task{
		ID:        "task-1",
		ProjectID: msg.ProjectID,
		TaskType:  task.TaskTypeBuildAgent,
		Status:    task.StatusRunning,
		Payload:   taskPayload(t, msg),
	}
}

func completedRunResult() *models.ExecutionResult {
	return &models.ExecutionResult{
		FinalStatus:     models.FinalStatusCompleted,
		CompletedStages: []string{"requirements_analysis"},
		Metrics:         models.AggregatedMetrics{InputTokens: 100, OutputTokens: 50},
	}
}

func TestExecuteDefaultActionRunsToCompletion(t *testing.T) {
	runner := &fakeRunner{result: completedRunResult()}
	exec := NewExecutor(runner, newFakeProjects(&models.Project{ID: "p1"}), nil)

	msg := models.TaskMessage{TaskID: "task-1", ProjectID: "p1", Action: models.TaskActionExecute}
	result, err := exec.Execute(context.Background(), buildTask(t, msg))
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, result.Status)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, runnerCall{method: "completion", projectID: "p1"}, runner.calls[0])

	var summary map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(result.Result), &summary))
	assert.EqualValues(t, 150, summary["total_tokens"])
}

func TestExecuteTargetStage(t *testing.T) {
	runner := &fakeRunner{result: completedRunResult()}
	exec := NewExecutor(runner, newFakeProjects(&models.Project{ID: "p1"}), nil)

	msg := models.TaskMessage{
		ProjectID:   "p1",
		Action:      models.TaskActionExecute,
		TargetStage: "agent_design",
	}
	_, err := exec.Execute(context.Background(), buildTask(t, msg))
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, runnerCall{method: "from_stage", projectID: "p1", stage: "agent_design"}, runner.calls[0])

	// execute_to_completion carries through to the engine.
	msg.ExecuteToCompletion = true
	_, err = exec.Execute(context.Background(), buildTask(t, msg))
	require.NoError(t, err)
	assert.True(t, runner.calls[1].toCompletion)
}

func TestExecuteResumeConsumesResumeStage(t *testing.T) {
	runner := &fakeRunner{result: completedRunResult()}
	projects := newFakeProjects(&models.Project{ID: "p1", ResumeFromStage: "tools_developer"})
	exec := NewExecutor(runner, projects, nil)

	msg := models.TaskMessage{ProjectID: "p1", Action: models.TaskActionResume}
	_, err := exec.Execute(context.Background(), buildTask(t, msg))
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, runnerCall{method: "from_stage", projectID: "p1", stage: "tools_developer", toCompletion: true}, runner.calls[0])

	// The resume point is consumed on first delivery.
	p, err := projects.GetProject(context.Background(), "p1")
	require.NoError(t, err)
	assert.Empty(t, p.ResumeFromStage)

	// A redelivered resume falls back to the full run, which skips
	// completed stages on its own.
	_, err = exec.Execute(context.Background(), buildTask(t, msg))
	require.NoError(t, err)
	assert.Equal(t, "completion", runner.calls[1].method)
}

func TestExecuteRestart(t *testing.T) {
	runner := &fakeRunner{result: completedRunResult()}
	exec := NewExecutor(runner, newFakeProjects(&models.Project{ID: "p1"}), nil)

	msg := models.TaskMessage{ProjectID: "p1", Action: models.TaskActionRestart, TargetStage: "system_architecture"}
	_, err := exec.Execute(context.Background(), buildTask(t, msg))
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, runnerCall{method: "from_stage", projectID: "p1", stage: "system_architecture", toCompletion: true}, runner.calls[0])
}

func TestExecuteRestartWithoutTargetStage(t *testing.T) {
	runner := &fakeRunner{result: completedRunResult()}
	exec := NewExecutor(runner, newFakeProjects(&models.Project{ID: "p1"}), nil)

	msg := models.TaskMessage{ProjectID: "p1", Action: models.TaskActionRestart}
	_, err := exec.Execute(context.Background(), buildTask(t, msg))
	require.Error(t, err)
	assert.Empty(t, runner.calls)
}

func TestExecuteInvalidPayloadFailsTerminally(t *testing.T) {
	exec := NewExecutor(&fakeRunner{}, newFakeProjects(), nil)

	tk := &ent.Task{
		ID:       "task-1",
		TaskType: task.TaskTypeBuildAgent,
		Payload:  map[string]interface{}{"priority": "not-a-number"},
	}
	result, err := exec.Execute(context.Background(), tk)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, result.Status)
	assert.Contains(t, result.ErrorMessage, "invalid task payload")
}

func TestExecuteMissingProjectIDFailsTerminally(t *testing.T) {
	exec := NewExecutor(&fakeRunner{}, newFakeProjects(), nil)

	tk := buildTask(t, models.TaskMessage{TaskID: "task-1"})
	result, err := exec.Execute(context.Background(), tk)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, result.Status)
}

func TestExecuteEngineErrorLeavesForRedelivery(t *testing.T) {
	runner := &fakeRunner{err: errors.New("db connection lost")}
	exec := NewExecutor(runner, newFakeProjects(&models.Project{ID: "p1"}), nil)

	msg := models.TaskMessage{ProjectID: "p1", Action: models.TaskActionExecute}
	result, err := exec.Execute(context.Background(), buildTask(t, msg))
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestExecuteCancelledContextLeavesForRedelivery(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	runner := &fakeRunner{err: context.Canceled}
	exec := NewExecutor(runner, newFakeProjects(&models.Project{ID: "p1"}), nil)
	cancel()

	msg := models.TaskMessage{ProjectID: "p1", Action: models.TaskActionExecute}
	result, err := exec.Execute(ctx, buildTask(t, msg))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestExecuteDeployTask(t *testing.T) {
	deployer := &fakeDeployer{summary: `{"deployed":true}`}
	exec := NewExecutor(&fakeRunner{}, newFakeProjects(), deployer)

	tk := buildTask(t, models.TaskMessage{ProjectID: "p1"})
	tk.TaskType = task.TaskTypeDeployAgent
	result, err := exec.Execute(context.Background(), tk)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, result.Status)
	assert.Equal(t, `{"deployed":true}`, result.Result)
	assert.Equal(t, []string{"p1"}, deployer.calls)
}

func TestExecuteDeployTaskWithoutDeployer(t *testing.T) {
	exec := NewExecutor(&fakeRunner{}, newFakeProjects(), nil)

	tk := buildTask(t, models.TaskMessage{ProjectID: "p1"})
	tk.TaskType = task.TaskTypeDeployAgent
	result, err := exec.Execute(context.Background(), tk)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, result.Status)
}

func TestExecuteRestoresWorkspaceFiles(t *testing.T) {
	runner := &fakeRunner{result: completedRunResult()}
	files := &fakeFileSync{}
	stages := &fakeStageLister{records: []*models.StageRecord{
		{
			Name:   "requirements_analysis",
			Status: models.StageStatusCompleted,
			GeneratedFiles: []models.GeneratedFile{
				{Path: "src/main.py"},
				{Path: "requirements.txt"},
			},
		},
		{
			Name:           "system_architecture",
			Status:         models.StageStatusFailed,
			GeneratedFiles: []models.GeneratedFile{{Path: "src/broken.py"}},
		},
	}}
	exec := NewExecutor(runner, newFakeProjects(&models.Project{ID: "p1"}), nil)
	exec.SetFileSync(files, stages)

	msg := models.TaskMessage{ProjectID: "p1", Action: models.TaskActionExecute}
	_, err := exec.Execute(context.Background(), buildTask(t, msg))
	require.NoError(t, err)

	// Only completed stages' files are pulled, and before the engine runs.
	require.Len(t, files.ensureCalls, 1)
	assert.Equal(t, []string{"src/main.py", "requirements.txt"}, files.ensureCalls[0])
	require.Len(t, runner.calls, 1)

	// The workspace is pushed back after the run.
	assert.Equal(t, []string{"p1"}, files.pushCalls)
}

func TestExecuteWorkspaceRestoreFailureLeavesForRedelivery(t *testing.T) {
	runner := &fakeRunner{result: completedRunResult()}
	files := &fakeFileSync{ensureErr: errors.New("s3 unreachable")}
	stages := &fakeStageLister{records: []*models.StageRecord{
		{
			Name:           "requirements_analysis",
			Status:         models.StageStatusCompleted,
			GeneratedFiles: []models.GeneratedFile{{Path: "src/main.py"}},
		},
	}}
	exec := NewExecutor(runner, newFakeProjects(&models.Project{ID: "p1"}), nil)
	exec.SetFileSync(files, stages)

	msg := models.TaskMessage{ProjectID: "p1", Action: models.TaskActionExecute}
	result, err := exec.Execute(context.Background(), buildTask(t, msg))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Empty(t, runner.calls)
}

func TestExecutePushesWorkspaceAfterFailedRun(t *testing.T) {
	runner := &fakeRunner{result: &models.ExecutionResult{FinalStatus: models.FinalStatusFailed, Message: "boom"}}
	files := &fakeFileSync{}
	exec := NewExecutor(runner, newFakeProjects(&models.Project{ID: "p1"}), nil)
	exec.SetFileSync(files, &fakeStageLister{})

	msg := models.TaskMessage{ProjectID: "p1", Action: models.TaskActionExecute}
	result, err := exec.Execute(context.Background(), buildTask(t, msg))
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, result.Status)

	// Partial work still reaches the blob store for the next delivery.
	assert.Equal(t, []string{"p1"}, files.pushCalls)
}

func TestExecuteEnqueuesDeployAfterAgentBuild(t *testing.T) {
	runner := &fakeRunner{result: completedRunResult()}
	tasks := &fakeTaskCreator{}
	exec := NewExecutor(runner, newFakeProjects(&models.Project{ID: "p1"}), nil)
	exec.SetTaskCreator(tasks)

	tk := buildTask(t, models.TaskMessage{ProjectID: "p1", Action: models.TaskActionExecute})
	tk.Priority = 2
	result, err := exec.Execute(context.Background(), tk)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, result.Status)

	require.Len(t, tasks.created, 1)
	created := tasks.created[0]
	assert.Equal(t, models.TaskTypeDeployAgent, created.TaskType)
	assert.Equal(t, "p1", created.ProjectID)
	assert.Equal(t, models.TaskActionExecute, created.Action)
	assert.Equal(t, 2, created.Priority)
}

func TestExecuteNoDeployForToolBuild(t *testing.T) {
	runner := &fakeRunner{result: completedRunResult()}
	tasks := &fakeTaskCreator{}
	exec := NewExecutor(runner, newFakeProjects(&models.Project{ID: "p1"}), nil)
	exec.SetTaskCreator(tasks)

	tk := buildTask(t, models.TaskMessage{ProjectID: "p1", Action: models.TaskActionExecute})
	tk.TaskType = task.TaskTypeBuildTool
	_, err := exec.Execute(context.Background(), tk)
	require.NoError(t, err)
	assert.Empty(t, tasks.created)
}

func TestExecuteNoDeployWhenRunDidNotComplete(t *testing.T) {
	runner := &fakeRunner{result: &models.ExecutionResult{FinalStatus: models.FinalStatusPaused}}
	tasks := &fakeTaskCreator{}
	exec := NewExecutor(runner, newFakeProjects(&models.Project{ID: "p1"}), nil)
	exec.SetTaskCreator(tasks)

	result, err := exec.Execute(context.Background(), buildTask(t, models.TaskMessage{ProjectID: "p1", Action: models.TaskActionExecute}))
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, result.Status)
	assert.Empty(t, tasks.created)
}

func TestExecuteDeployEnqueueFailureLeavesForRedelivery(t *testing.T) {
	runner := &fakeRunner{result: completedRunResult()}
	tasks := &fakeTaskCreator{err: errors.New("db connection lost")}
	exec := NewExecutor(runner, newFakeProjects(&models.Project{ID: "p1"}), nil)
	exec.SetTaskCreator(tasks)

	result, err := exec.Execute(context.Background(), buildTask(t, models.TaskMessage{ProjectID: "p1", Action: models.TaskActionExecute}))
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestTranslateResult(t *testing.T) {
	tests := []struct {
		name   string
		result *models.ExecutionResult
		want   task.Status
	}{
		{"completed", &models.ExecutionResult{FinalStatus: models.FinalStatusCompleted}, task.StatusCompleted},
		{"failed", &models.ExecutionResult{FinalStatus: models.FinalStatusFailed, Message: "boom"}, task.StatusFailed},
		{"paused releases the task", &models.ExecutionResult{FinalStatus: models.FinalStatusPaused}, task.StatusPending},
		{"stopped cancels the task", &models.ExecutionResult{FinalStatus: models.FinalStatusStopped}, task.StatusCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateResult(tt.result)
			assert.Equal(t, tt.want, got.Status)
			if tt.result.Message != "" {
				assert.Equal(t, tt.result.Message, got.ErrorMessage)
			}
		})
	}
}
