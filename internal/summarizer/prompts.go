package summarizer

import "github.com/minhngocdo/meeting-summarizer/internal/meeting"

// promptPair holds the two generation templates for one meeting type. Each
// template takes the transcript as its single format argument.
type promptPair struct {
	summary string
	actions string
}

const generalSummaryPrompt = `You are an expert meeting analyst. Analyze the following meeting transcript and create a comprehensive summary.

TRANSCRIPT:
%s

Please provide a well-structured summary that includes:

1. **Meeting Overview**: Brief context and purpose
2. **Key Discussion Points**: Main topics covered (3-5 bullet points)
3. **Decisions Made**: Any concrete decisions or agreements reached
4. **Important Information**: Critical details, numbers, dates, or commitments mentioned
5. **Next Steps**: Any mentioned follow-up activities or future meetings

Format your response in clear, professional language suitable for sharing with stakeholders who weren't present. Keep it concise but comprehensive (aim for 150-300 words).

Focus on actionable information and key takeaways rather than minute details of the conversation flow.`

const generalActionsPrompt = `You are a project management expert. Analyze the following meeting transcript and extract all action items, tasks, and commitments.

TRANSCRIPT:
%s

Extract and format action items following these guidelines:

1. **Identify all actionable tasks**: Look for commitments, assignments, deadlines, and follow-up items
2. **Include responsible parties**: When mentioned, note who is responsible for each task
3. **Include deadlines**: When mentioned, note any specific timelines or due dates
4. **Be specific**: Make each action item clear and actionable

Format each action item as a bullet point starting with "-" and include:
- The specific task or action required
- Who is responsible (if mentioned)
- When it should be completed (if mentioned)
- Any relevant context or requirements

Example format:
- [Task description] - Assigned to [Person] by [Date/Timeline]
- [Task description] - [Additional context if needed]

If no clear action items are found, respond with:
- No specific action items identified in this meeting

Only include items that represent concrete actions to be taken, not general discussion points or informational statements.`

const standupSummaryPrompt = `Analyze this standup/daily scrum meeting transcript:

%s

Provide a summary covering:
1. **Team Updates**: What each team member accomplished
2. **Current Work**: What everyone is working on today
3. **Blockers**: Any impediments or challenges mentioned
4. **Sprint Progress**: Overall team progress toward goals

Keep it concise and focused on status updates.`

const standupActionsPrompt = `Extract action items from this standup meeting:

%s

Focus on:
- Tasks to unblock team members
- Follow-up items mentioned
- Issues that need resolution
- Commitments for the day/sprint

Format as bullet points with "-" prefix.`

const planningSummaryPrompt = `Analyze this planning meeting transcript:

%s

Summarize:
1. **Planning Scope**: What period/project was planned
2. **Goals & Objectives**: Main targets set
3. **Resource Allocation**: People, time, budget decisions
4. **Key Milestones**: Important dates and deliverables
5. **Risks & Dependencies**: Challenges identified

Focus on strategic decisions and commitments.`

const planningActionsPrompt = `Extract planning-related action items:

%s

Look for:
- Tasks to prepare for upcoming work
- Research or investigation items
- Resource acquisition needs
- Milestone preparation activities
- Risk mitigation actions

Format as bullet points with "-" prefix.`

const retrospectiveSummaryPrompt = `Analyze this retrospective meeting transcript:

%s

Summarize:
1. **What Went Well**: Positive outcomes and successes
2. **What Could Improve**: Areas for enhancement
3. **Action Items**: Concrete steps for improvement
4. **Team Insights**: Key learnings and observations

Focus on improvement opportunities and team dynamics.`

const retrospectiveActionsPrompt = `Extract improvement action items from this retrospective:

%s

Focus on:
- Process improvements to implement
- Tools or practices to try
- Training or skill development needs
- Communication enhancements
- Team building activities

Format as bullet points with "-" prefix.`

var meetingTypePrompts = map[meeting.Type]promptPair{
	meeting.TypeGeneral:       {summary: generalSummaryPrompt, actions: generalActionsPrompt},
	meeting.TypeStandup:       {summary: standupSummaryPrompt, actions: standupActionsPrompt},
	meeting.TypePlanning:      {summary: planningSummaryPrompt, actions: planningActionsPrompt},
	meeting.TypeRetrospective: {summary: retrospectiveSummaryPrompt, actions: retrospectiveActionsPrompt},
}

// promptsFor returns the prompt pair for the meeting type, defaulting to the
// general pair for unrecognized tags.
func promptsFor(t meeting.Type) promptPair {
	if pair, ok := meetingTypePrompts[t]; ok {
		return pair
	}
	return meetingTypePrompts[meeting.TypeGeneral]
}
