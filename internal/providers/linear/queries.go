package linear

const queryTeams = `
query Teams {
  teams {
    nodes {
      id
      name
    }
  }
}`

const queryTeamStates = `
query TeamStates($teamId: String!) {
  team(id: $teamId) {
    states {
      nodes {
        id
        name
      }
    }
  }
}`

const queryTeamIssuesByStatus = `
query TeamIssuesByStatus($teamId: ID!, $status: String!) {
  issues(
    first: 50,
    filter: {
      state: { name: { eq: $status } },
      team: { id: { eq: $teamId } }
    }
  ) {
    nodes {
      id
      title
      description
      priority
      state {
        name
      }
      assignee {
        name
        email
      }
      url
      createdAt
      dueDate
    }
  }
}`

const queryUserByEmail = `
query UserByEmail($email: String!) {
  users(filter: {email: {eq: $email}}) {
    nodes {
      id
    }
  }
}`

const queryUserIssues = `
query UserIssues($userId: String!) {
  user(id: $userId) {
    assignedIssues {
      nodes {
        id
        title
        description
        priority
        state {
          name
        }
        assignee {
          name
          email
        }
        url
        createdAt
        dueDate
      }
    }
  }
}`

const mutationCreateIssue = `
mutation CreateIssue($teamId: String!, $title: String!, $description: String!, $stateId: String!, $assigneeId: String) {
  issueCreate(
    input: {
      teamId: $teamId,
      title: $title,
      description: $description,
      stateId: $stateId,
      assigneeId: $assigneeId
    }
  ) {
    success
    issue {
      id
      title
      description
      priority
      state {
        name
      }
      assignee {
        name
        email
      }
      url
      createdAt
      dueDate
    }
  }
}`
