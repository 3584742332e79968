package resources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/litmos/pkg/litmos"
	"github.com/hashicorp-forge/litmos/pkg/normalize"
)

type call struct {
	method string
	path   string
	params litmos.Params
	query  litmos.Params
}

// fakeRequester records calls and answers each with the next canned JSON
// body (normalized the same way the client does) or error.
type fakeRequester struct {
	calls     []call
	responses []string
	err       error
}

func (f *fakeRequester) respond(c call) (*litmos.Response, error) {
	f.calls = append(f.calls, c)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.responses) == 0 {
		return &litmos.Response{StatusCode: http.StatusOK, Kind: litmos.ResponseEmpty}, nil
	}

	body := f.responses[0]
	f.responses = f.responses[1:]

	value, err := normalize.JSON([]byte(body))
	if err != nil {
		return nil, err
	}
	return &litmos.Response{
		StatusCode: http.StatusOK,
		Kind:       litmos.ResponseNormalized,
		Body:       []byte(body),
		Value:      value,
	}, nil
}

func (f *fakeRequester) Get(_ context.Context, path string, params litmos.Params) (*litmos.Response, error) {
	return f.respond(call{method: http.MethodGet, path: path, params: params})
}

func (f *fakeRequester) Post(_ context.Context, path string, params, query litmos.Params) (*litmos.Response, error) {
	return f.respond(call{method: http.MethodPost, path: path, params: params, query: query})
}

func (f *fakeRequester) Put(_ context.Context, path string, params, query litmos.Params) (*litmos.Response, error) {
	return f.respond(call{method: http.MethodPut, path: path, params: params, query: query})
}

func (f *fakeRequester) Delete(_ context.Context, path string, params litmos.Params) (*litmos.Response, error) {
	return f.respond(call{method: http.MethodDelete, path: path, params: params})
}

func TestUsers_List(t *testing.T) {
	fake := &fakeRequester{responses: []string{
		`[{"Id":"u1","UserName":"ann","Active":true,"LastLogin":"/Date(1388534400000+0000)/"},{"Id":"u2","UserName":"bo","LastLogin":""}]`,
	}}
	svc := New(fake)

	users, err := svc.Users.List(context.Background(), ListOptions{Search: "a", Limit: 50})
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "ann", users[0].UserName)
	assert.True(t, users[0].Active)
	assert.True(t, users[0].LastLogin.Equal(time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, users[1].LastLogin.IsZero())

	require.Len(t, fake.calls, 1)
	assert.Equal(t, call{
		method: http.MethodGet,
		path:   "users",
		params: litmos.Params{"search": "a", "limit": 50},
	}, fake.calls[0])
}

func TestUsers_ListEmpty(t *testing.T) {
	svc := New(&fakeRequester{})

	users, err := svc.Users.List(context.Background(), ListOptions{})
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUsers_ListRejectsObject(t *testing.T) {
	svc := New(&fakeRequester{responses: []string{`{"Id":"u1"}`}})

	_, err := svc.Users.List(context.Background(), ListOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode users")
}

func TestUsers_Get(t *testing.T) {
	fake := &fakeRequester{responses: []string{`{"Id":"a/b","UserName":"ann","Street1":"Main St"}`}}
	svc := New(fake)

	u, err := svc.Users.Get(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "ann", u.UserName)
	assert.Equal(t, "Main St", u.Street1)
	assert.Equal(t, "users/a%2Fb", fake.calls[0].path)
}

func TestUsers_GetRequiresID(t *testing.T) {
	fake := &fakeRequester{}
	_, err := New(fake).Users.Get(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid user id")
	assert.Empty(t, fake.calls)
}

func TestUsers_Create(t *testing.T) {
	fake := &fakeRequester{responses: []string{`{"Id":"new","UserName":"ann","Email":"ann@example.com"}`}}
	svc := New(fake)

	u, err := svc.Users.Create(context.Background(), NewUser{
		UserName:  "ann",
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", u.ID)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, http.MethodPost, fake.calls[0].method)
	assert.Equal(t, "users", fake.calls[0].path)
	assert.Equal(t, litmos.Params{
		"UserName":        "ann",
		"FirstName":       "Ann",
		"LastName":        "Lee",
		"Email":           "ann@example.com",
		"AccessLevel":     "Learner",
		"DisableMessages": false,
		"SkipFirstLogin":  false,
	}, fake.calls[0].params)
}

func TestUsers_CreateValidation(t *testing.T) {
	tests := []struct {
		name     string
		user     NewUser
		errorMsg string
	}{
		{
			name:     "missing user name",
			user:     NewUser{FirstName: "A", LastName: "B", Email: "a@b.co"},
			errorMsg: "UserName",
		},
		{
			name:     "bad email",
			user:     NewUser{UserName: "a", FirstName: "A", LastName: "B", Email: "nope"},
			errorMsg: "Email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRequester{}
			_, err := New(fake).Users.Create(context.Background(), tt.user)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
			assert.Empty(t, fake.calls)
		})
	}
}

func TestUsers_Update(t *testing.T) {
	fake := &fakeRequester{}
	err := New(fake).Users.Update(context.Background(), "u1", litmos.Params{
		"first_name": "Annie",
		"street1":    "Elm St",
	})
	require.NoError(t, err)

	assert.Equal(t, call{
		method: http.MethodPut,
		path:   "users/u1",
		params: litmos.Params{"Id": "u1", "FirstName": "Annie", "Street1": "Elm St"},
	}, fake.calls[0])
}

func TestUsers_UpdateRequiresFields(t *testing.T) {
	fake := &fakeRequester{}
	err := New(fake).Users.Update(context.Background(), "u1", nil)
	require.Error(t, err)
	assert.Empty(t, fake.calls)
}

func TestUsers_DeleteAndUnassign(t *testing.T) {
	fake := &fakeRequester{}
	svc := New(fake)
	ctx := context.Background()

	require.NoError(t, svc.Users.Delete(ctx, "u1"))
	require.NoError(t, svc.Users.UnassignCourse(ctx, "u1", "c9"))

	require.Len(t, fake.calls, 2)
	assert.Equal(t, http.MethodDelete, fake.calls[0].method)
	assert.Equal(t, "users/u1", fake.calls[0].path)
	assert.Equal(t, "users/u1/courses/c9", fake.calls[1].path)
}

func TestUsers_Courses(t *testing.T) {
	fake := &fakeRequester{responses: []string{
		`[{"Id":"c1","Name":"Safety","Complete":true,"PercentageComplete":100,"DateCompleted":"/Date(1388534400000+0000)/"}]`,
	}}

	courses, err := New(fake).Users.Courses(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.True(t, courses[0].Completed)
	assert.Equal(t, float64(100), courses[0].PercentageComplete)
	assert.False(t, courses[0].DateCompleted.IsZero())
	assert.Equal(t, "users/u1/courses", fake.calls[0].path)
}

func TestTeams(t *testing.T) {
	fake := &fakeRequester{responses: []string{
		`[{"Id":"t1","Name":"Ops","ParentTeamId":"t0"}]`,
		`{"Id":"t1","Name":"Ops"}`,
		`{"Id":"t2","Name":"New"}`,
		`[{"Id":"u1","UserName":"ann"}]`,
	}}
	svc := New(fake)
	ctx := context.Background()

	teams, err := svc.Teams.List(ctx, ListOptions{Start: 10})
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "t0", teams[0].ParentTeamID)

	team, err := svc.Teams.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Ops", team.Name)

	created, err := svc.Teams.Create(ctx, NewTeam{Name: "New", Description: "d"})
	require.NoError(t, err)
	assert.Equal(t, "t2", created.ID)

	members, err := svc.Teams.Members(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, members, 1)

	require.NoError(t, svc.Teams.RemoveMember(ctx, "t1", "u1"))

	require.Len(t, fake.calls, 5)
	assert.Equal(t, litmos.Params{"start": 10}, fake.calls[0].params)
	assert.Equal(t, "teams/t1", fake.calls[1].path)
	assert.Equal(t, litmos.Params{"Name": "New", "Description": "d"}, fake.calls[2].params)
	assert.Equal(t, "teams/t1/users", fake.calls[3].path)
	assert.Equal(t, "teams/t1/users/u1", fake.calls[4].path)
}

func TestTeams_CreateValidation(t *testing.T) {
	fake := &fakeRequester{}
	_, err := New(fake).Teams.Create(context.Background(), NewTeam{})
	require.Error(t, err)
	assert.Empty(t, fake.calls)
}

func TestCourses(t *testing.T) {
	fake := &fakeRequester{responses: []string{
		`[{"Id":"c1","Code":"SAFE","Name":"Safety","Active":true,"ForSale":false}]`,
		`{"Id":"c1","Name":"Safety"}`,
		`[{"Id":"u1","UserName":"ann","Completed":true}]`,
	}}
	svc := New(fake)
	ctx := context.Background()

	courses, err := svc.Courses.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "SAFE", courses[0].Code)

	course, err := svc.Courses.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Safety", course.Name)

	users, err := svc.Courses.Users(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, users[0].Completed)

	assert.Equal(t, litmos.Params{}, fake.calls[0].params)
	assert.Equal(t, "courses/c1/users", fake.calls[2].path)
}

func TestErrorsPropagate(t *testing.T) {
	fake := &fakeRequester{err: &litmos.Error{Kind: litmos.KindNotFound, StatusCode: 404}}

	_, err := New(fake).Users.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, litmos.IsNotFound(err))
	assert.Contains(t, err.Error(), "failed to get user")
}

func TestUsers_AgainstClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.svc/users/u1", r.URL.Path)
		assert.Equal(t, "site", r.URL.Query().Get("source"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"Id":          "u1",
			"UserName":    "ann",
			"CreatedDate": "/Date(1388534400000+0000)/",
		})
	}))
	defer srv.Close()

	client, err := litmos.NewClient(litmos.Config{
		APIKey:  "key",
		Source:  "site",
		BaseURL: srv.URL + "/v1.svc",
		Logger:  hclog.NewNullLogger(),
	})
	require.NoError(t, err)

	u, err := New(client).Users.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "ann", u.UserName)
	assert.Equal(t, 2014, u.CreatedDate.Year())
}
