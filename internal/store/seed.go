package store

import (
	"fmt"
	"time"

	"talentpipe-backend/internal/model"
)

// seed loads the demo dataset with timestamps relative to base
func (s *Store) seed(base time.Time) {
	daysAgo := func(n int) time.Time { return base.AddDate(0, 0, -n) }

	for _, c := range []model.Candidate{
		{
			ID: "C001", Name: "Alice Johnson", Email: "alice.johnson@example.com",
			Phone: "+1-555-0101", Location: "San Francisco, CA",
			Skills:            []string{"Java", "Spring Boot", "AWS", "Kubernetes", "Microservices"},
			YearsOfExperience: 8, CurrentRole: "Senior Software Engineer", CurrentCompany: "Acme Corp",
			Status:  model.CandidateActive,
			Summary: "Experienced Java engineer with cloud-native expertise. Led migration of monolith to microservices for 2M+ user platform.",
			LinkedinURL: "linkedin.com/in/alice-johnson", CreatedAt: daysAgo(30),
		},
		{
			ID: "C002", Name: "Bob Smith", Email: "bob.smith@example.com",
			Phone: "+1-555-0102", Location: "New York, NY",
			Skills:            []string{"Python", "Machine Learning", "TensorFlow", "PyTorch", "MLOps"},
			YearsOfExperience: 5, CurrentRole: "ML Engineer", CurrentCompany: "DataDriven Inc",
			Status:  model.CandidateActive,
			Summary: "ML engineer specializing in production NLP systems. Published researcher with 3 patents in deep learning.",
			LinkedinURL: "linkedin.com/in/bob-smith-ml", CreatedAt: daysAgo(20),
		},
		{
			ID: "C003", Name: "Carol Williams", Email: "carol.w@example.com",
			Phone: "+1-555-0103", Location: "Austin, TX",
			Skills:            []string{"React", "TypeScript", "Node.js", "GraphQL", "PostgreSQL"},
			YearsOfExperience: 6, CurrentRole: "Full Stack Developer", CurrentCompany: "StartupXYZ",
			Status:  model.CandidateActive,
			Summary: "Full-stack developer with modern web stack expertise. Built and shipped 4 SaaS products from 0 to 1.",
			LinkedinURL: "linkedin.com/in/carol-williams-dev", CreatedAt: daysAgo(15),
		},
		{
			ID: "C004", Name: "David Brown", Email: "david.brown@example.com",
			Phone: "+1-555-0104", Location: "Seattle, WA",
			Skills:            []string{"Java", "Microservices", "Kafka", "Docker", "System Design", "Architecture"},
			YearsOfExperience: 12, CurrentRole: "Lead Software Architect", CurrentCompany: "BigTech LLC",
			Status:  model.CandidateActive,
			Summary: "Architect with 12 years designing high-throughput distributed systems. Scaled platform to handle 500K TPS.",
			LinkedinURL: "linkedin.com/in/david-brown-arch", CreatedAt: daysAgo(45),
		},
		{
			ID: "C005", Name: "Emma Davis", Email: "emma.davis@example.com",
			Phone: "+1-555-0105", Location: "Remote",
			Skills:            []string{"Go", "Rust", "Linux", "Terraform", "CI/CD", "Observability"},
			YearsOfExperience: 7, CurrentRole: "Platform Engineer", CurrentCompany: "CloudNative Co",
			Status:  model.CandidateHired,
			Summary: "Platform engineer who built internal developer platform used by 200+ engineers. SRE background.",
			LinkedinURL: "linkedin.com/in/emma-davis-platform", CreatedAt: daysAgo(60),
		},
		{
			ID: "C006", Name: "Frank Lee", Email: "frank.lee@example.com",
			Phone: "+1-555-0106", Location: "Chicago, IL",
			Skills:            []string{"Java", "Spring Boot", "Kafka", "Redis", "MySQL"},
			YearsOfExperience: 4, CurrentRole: "Software Engineer", CurrentCompany: "FinTech Solutions",
			Status:  model.CandidateActive,
			Summary: "Backend engineer with fintech background. Built real-time payment processing system handling $10M/day.",
			LinkedinURL: "linkedin.com/in/frank-lee-dev", CreatedAt: daysAgo(10),
		},
	} {
		s.candidates.put(c.ID, c)
	}

	for _, j := range []model.Job{
		{
			ID: "J001", Title: "Senior Software Engineer", Department: "Engineering",
			Location: "San Francisco, CA / Remote", Type: model.JobFullTime, Status: model.JobOpen,
			Description: "Join our platform team to build the next generation of our core product. " +
				"You'll architect and implement scalable backend services handling millions of users.",
			RequiredSkills:  []string{"Java", "Spring Boot", "Microservices", "AWS"},
			PreferredSkills: []string{"Kafka", "Kubernetes", "System Design"},
			SalaryRange:     "$160,000 - $210,000",
			HiringManagerID: "HM001", HiringManagerName: "Sarah Connor", OpenedAt: daysAgo(45),
		},
		{
			ID: "J002", Title: "Machine Learning Engineer", Department: "Data Science",
			Location: "New York, NY / Hybrid", Type: model.JobFullTime, Status: model.JobOpen,
			Description: "Build and deploy production ML models that power our recommendation and fraud-detection systems. " +
				"Partner with data scientists to productionize research work.",
			RequiredSkills:  []string{"Python", "Machine Learning", "TensorFlow", "MLOps"},
			PreferredSkills: []string{"PyTorch", "Spark", "Kubernetes"},
			SalaryRange:     "$150,000 - $200,000",
			HiringManagerID: "HM002", HiringManagerName: "John Wick", OpenedAt: daysAgo(30),
		},
		{
			ID: "J003", Title: "Platform Engineer", Department: "Infrastructure",
			Location: "Remote", Type: model.JobFullTime, Status: model.JobFilled,
			Description: "Own and evolve our internal developer platform. Drive developer productivity initiatives " +
				"and build the tooling, CI/CD pipelines, and observability stack used by all engineering teams.",
			RequiredSkills:  []string{"Go", "Kubernetes", "Terraform", "CI/CD"},
			PreferredSkills: []string{"Rust", "Linux", "Observability"},
			SalaryRange:     "$140,000 - $180,000",
			HiringManagerID: "HM003", HiringManagerName: "Diana Prince", OpenedAt: daysAgo(90),
		},
	} {
		s.jobs.put(j.ID, j)
	}

	entry := func(status model.ApplicationStatus, ago int, by, reason string) model.StatusHistoryEntry {
		return model.StatusHistoryEntry{Status: status, ChangedAt: daysAgo(ago), ChangedBy: by, Reason: reason}
	}
	note := func(id, appID, text, authorID, authorName string, ago int) model.RecruiterNote {
		return model.RecruiterNote{
			ID: id, ApplicationID: appID, Note: text,
			AuthorID: authorID, AuthorName: authorName, CreatedAt: daysAgo(ago),
		}
	}

	for _, a := range []model.Application{
		{
			ID: "A001", CandidateID: "C001", JobID: "J001",
			Status: model.StatusFinalInterview, Source: model.SourceLinkedin,
			AppliedAt: daysAgo(28), CurrentInterviewRound: 3,
			StatusHistory: []model.StatusHistoryEntry{
				entry(model.StatusReceived, 28, "system", "Application received"),
				entry(model.StatusScreening, 25, "recruiter-1", "Passed resume screening"),
				entry(model.StatusPhoneInterview, 20, "recruiter-1", "Phone screen completed"),
				entry(model.StatusTechnicalInterview, 14, "recruiter-1", "Technical round passed"),
				entry(model.StatusFinalInterview, 3, "recruiter-1", "Scheduled final interview"),
			},
			Notes: []model.RecruiterNote{
				note("N001", "A001", "Strong Java background. Answered system design questions confidently.", "recruiter-1", "Jane Smith", 20),
				note("N002", "A001", "Technical round: solved 2 medium LeetCode problems optimally. Good communication.", "recruiter-1", "Jane Smith", 14),
			},
		},
		{
			ID: "A002", CandidateID: "C002", JobID: "J002",
			Status: model.StatusPhoneInterview, Source: model.SourceReferral,
			AppliedAt: daysAgo(18), CurrentInterviewRound: 1,
			StatusHistory: []model.StatusHistoryEntry{
				entry(model.StatusReceived, 18, "system", "Application received"),
				entry(model.StatusScreening, 15, "recruiter-2", "Excellent ML background"),
				entry(model.StatusPhoneInterview, 7, "recruiter-2", "Phone screen scheduled"),
			},
			Notes: []model.RecruiterNote{
				note("N003", "A002", "Referred by Dr. Emily Chen (Head of Research). Strong ML profile, 3 patents.", "recruiter-2", "Mark Johnson", 18),
			},
		},
		{
			ID: "A003", CandidateID: "C003", JobID: "J001",
			Status: model.StatusScreening, Source: model.SourceDirect,
			AppliedAt: daysAgo(10), CurrentInterviewRound: 0,
			StatusHistory: []model.StatusHistoryEntry{
				entry(model.StatusReceived, 10, "system", "Application received"),
				entry(model.StatusScreening, 7, "recruiter-1", "Under resume review"),
			},
			Notes: []model.RecruiterNote{},
		},
		{
			ID: "A004", CandidateID: "C004", JobID: "J001",
			Status: model.StatusOfferExtended, Source: model.SourceAgency,
			AppliedAt: daysAgo(40), CurrentInterviewRound: 4,
			StatusHistory: []model.StatusHistoryEntry{
				entry(model.StatusReceived, 40, "system", "Agency submission"),
				entry(model.StatusScreening, 38, "recruiter-1", "Top-tier candidate"),
				entry(model.StatusPhoneInterview, 33, "recruiter-1", "Excellent culture fit"),
				entry(model.StatusTechnicalInterview, 25, "recruiter-1", "Passed all technical rounds"),
				entry(model.StatusFinalInterview, 15, "recruiter-1", "Final exec interview done"),
				entry(model.StatusOfferExtended, 5, "recruiter-1", "Offer sent: $195K + equity"),
			},
			Notes: []model.RecruiterNote{
				note("N004", "A004", "Exceptional system design skills. 12 years of relevant experience. HIGHLY RECOMMENDED.", "recruiter-1", "Jane Smith", 25),
				note("N005", "A004", "Offer extended. Candidate is comparing with two other offers. Decision expected by EOW.", "recruiter-1", "Jane Smith", 5),
			},
		},
		{
			ID: "A005", CandidateID: "C005", JobID: "J003",
			Status: model.StatusHired, Source: model.SourceLinkedin,
			AppliedAt: daysAgo(80), CurrentInterviewRound: 3,
			StatusHistory: []model.StatusHistoryEntry{
				entry(model.StatusReceived, 80, "system", "Application received"),
				entry(model.StatusScreening, 76, "recruiter-3", "Strong platform background"),
				entry(model.StatusPhoneInterview, 70, "recruiter-3", "Excellent fit"),
				entry(model.StatusTechnicalInterview, 63, "recruiter-3", "Top-notch"),
				entry(model.StatusFinalInterview, 55, "recruiter-3", "Passed final"),
				entry(model.StatusOfferExtended, 50, "recruiter-3", "Offer accepted"),
				entry(model.StatusHired, 30, "system", fmt.Sprintf("Started on %s", daysAgo(30).Format("2006-01-02"))),
			},
			Notes: []model.RecruiterNote{
				note("N006", "A005", "Best platform candidate we've seen this year. Offer accepted immediately.", "recruiter-3", "Tom Wilson", 50),
			},
		},
		{
			ID: "A006", CandidateID: "C001", JobID: "J003",
			Status: model.StatusRejected, Source: model.SourceDirect,
			AppliedAt: daysAgo(50), CurrentInterviewRound: 1,
			StatusHistory: []model.StatusHistoryEntry{
				entry(model.StatusReceived, 50, "system", "Application received"),
				entry(model.StatusScreening, 48, "recruiter-3", "Go/Rust skills missing"),
				entry(model.StatusRejected, 46, "recruiter-3", "Skills mismatch for platform role"),
			},
			Notes: []model.RecruiterNote{
				note("N007", "A006", "Strong Java background but no Go/Rust/Terraform experience required for this role. Rejected. Consider for J001.", "recruiter-3", "Tom Wilson", 46),
			},
		},
		{
			ID: "A007", CandidateID: "C006", JobID: "J001",
			Status: model.StatusTechnicalInterview, Source: model.SourceJobBoard,
			AppliedAt: daysAgo(8), CurrentInterviewRound: 2,
			StatusHistory: []model.StatusHistoryEntry{
				entry(model.StatusReceived, 8, "system", "Application received"),
				entry(model.StatusScreening, 6, "recruiter-1", "Good fintech background"),
				entry(model.StatusPhoneInterview, 3, "recruiter-1", "Phone screen passed"),
				entry(model.StatusTechnicalInterview, 1, "recruiter-1", "Technical round today"),
			},
			Notes: []model.RecruiterNote{
				note("N008", "A007", "Real-time payment processing experience is very relevant. Tracking closely.", "recruiter-1", "Jane Smith", 6),
			},
		},
	} {
		s.applications.put(a.ID, a)
	}

	for _, ar := range []model.AssessmentResult{
		{
			ID: "AS001", CandidateID: "C001", ApplicationID: "A001",
			Type: model.AssessmentCodingChallenge, Score: 85, MaxScore: 100, Percentile: 88,
			CompletedAt: daysAgo(22),
			Summary:     "Solved 3/3 problems. Optimal solution for two, brute-force for the third.",
			Breakdown: map[string]any{
				"problemsSolved": 3, "optimalSolutions": 2, "timeUsedMinutes": 72,
				"languages": []string{"Java"},
			},
		},
		{
			ID: "AS002", CandidateID: "C001", ApplicationID: "A001",
			Type: model.AssessmentSystemDesign, Score: 78, MaxScore: 100, Percentile: 75,
			CompletedAt: daysAgo(16),
			Summary:     "Designed a URL shortener at scale. Good understanding of caching and sharding, missed CDN edge cases.",
			Breakdown: map[string]any{
				"designScore": 80, "scalabilityScore": 82, "reliabilityScore": 70,
				"communicationScore": 85, "missingTopics": []string{"CDN", "Global failover"},
			},
		},
		{
			ID: "AS003", CandidateID: "C002", ApplicationID: "A002",
			Type: model.AssessmentTechnicalScreening, Score: 90, MaxScore: 100, Percentile: 94,
			CompletedAt: daysAgo(10),
			Summary:     "Exceptional ML fundamentals. Deep knowledge of transformer architectures and MLOps.",
			Breakdown: map[string]any{
				"mlTheoryScore": 95, "mlOpsScore": 88, "codingScore": 87,
				"papersDiscussed": []string{"Attention is All You Need", "BERT", "GPT-4 Technical Report"},
			},
		},
		{
			ID: "AS004", CandidateID: "C003", ApplicationID: "A003",
			Type: model.AssessmentCodingChallenge, Score: 72, MaxScore: 100, Percentile: 65,
			CompletedAt: daysAgo(5),
			Summary:     "Completed 2/3 problems. Strong frontend skills but backend algorithm weak.",
			Breakdown: map[string]any{
				"problemsSolved": 2, "optimalSolutions": 1, "timeUsedMinutes": 85,
				"languages": []string{"TypeScript", "Node.js"},
			},
		},
		{
			ID: "AS005", CandidateID: "C004", ApplicationID: "A004",
			Type: model.AssessmentCodingChallenge, Score: 92, MaxScore: 100, Percentile: 97,
			CompletedAt: daysAgo(27),
			Summary:     "Flawless. All 3 problems solved optimally with detailed complexity analysis.",
			Breakdown: map[string]any{
				"problemsSolved": 3, "optimalSolutions": 3, "timeUsedMinutes": 55,
				"languages": []string{"Java"}, "bonus": "Provided two alternative solutions for problem 2",
			},
		},
		{
			ID: "AS006", CandidateID: "C004", ApplicationID: "A004",
			Type: model.AssessmentSystemDesign, Score: 94, MaxScore: 100, Percentile: 98,
			CompletedAt: daysAgo(20),
			Summary:     "Outstanding system design for a distributed job scheduler. Covered partitioning, replication, consensus, observability.",
			Breakdown: map[string]any{
				"designScore": 96, "scalabilityScore": 95, "reliabilityScore": 94,
				"communicationScore": 92, "standoutTopics": []string{"Raft consensus", "Back-pressure", "Circuit breaker"},
			},
		},
		{
			ID: "AS007", CandidateID: "C004", ApplicationID: "A004",
			Type: model.AssessmentBehavioral, Score: 88, MaxScore: 100, Percentile: 85,
			CompletedAt: daysAgo(15),
			Summary:     "Strong leadership examples. Clear ownership mentality. Handled conflict scenarios well.",
			Breakdown: map[string]any{
				"leadershipScore": 90, "communicationScore": 88, "problemSolvingScore": 86,
				"starStoriesProvided": 5,
			},
		},
		{
			ID: "AS008", CandidateID: "C005", ApplicationID: "A005",
			Type: model.AssessmentCodingChallenge, Score: 88, MaxScore: 100, Percentile: 91,
			CompletedAt: daysAgo(75),
			Summary:     "Solved all problems in Go. Particularly strong on concurrency patterns.",
			Breakdown: map[string]any{
				"problemsSolved": 3, "optimalSolutions": 3, "timeUsedMinutes": 60,
				"languages": []string{"Go", "Rust"},
			},
		},
		{
			ID: "AS009", CandidateID: "C005", ApplicationID: "A005",
			Type: model.AssessmentTakeHomeProject, Score: 95, MaxScore: 100, Percentile: 99,
			CompletedAt: daysAgo(68),
			Summary:     "Built a fully functional CI/CD pipeline tool in Go. Clean code, comprehensive tests, excellent docs.",
			Breakdown: map[string]any{
				"codeQuality": 96, "testCoverage": 94, "documentation": 98,
				"repoLink": "github.com/emmadavis/pipeline-demo",
			},
		},
		{
			ID: "AS010", CandidateID: "C006", ApplicationID: "A007",
			Type: model.AssessmentCodingChallenge, Score: 78, MaxScore: 100, Percentile: 72,
			CompletedAt: daysAgo(2),
			Summary:     "Solved 2/3 problems optimally. Showed strong Java concurrency knowledge.",
			Breakdown: map[string]any{
				"problemsSolved": 3, "optimalSolutions": 2, "timeUsedMinutes": 80,
				"languages": []string{"Java"},
			},
		},
	} {
		s.assessments.put(ar.ID, ar)
	}
}
