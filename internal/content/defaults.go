package content

// Default is the built-in portfolio copy.
func Default() *Content {
	return &Content{
		Name:     "J. Heathcoat",
		Headline: "Software Engineer",
		About: "I love building software that is both useful and fun, and I am always curious about how things work " +
			"behind the scenes. Most of my projects start with a simple idea and turn into a chance to learn something " +
			"new, whether it is exploring a different language, experimenting with tools, or solving tricky problems.",
		Education: []Entry{{
			Title:  "Arizona State University",
			Org:    "Bachelor of Science in Software Engineering",
			Period: "2020 - 2025",
			Notes: []string{
				"GPA (Current): 4.0",
				"Relevant coursework in algorithms, data structures, and software engineering.",
			},
		}},
		Career: []Entry{
			{
				Title:  "Network Operations Engineer",
				Org:    "Cox Communications",
				Period: "2021 - Present",
				Notes: []string{
					"Leveraged network monitoring tools and technical expertise to redesign infrastructure, diagnose " +
						"signal issues across RF and optical systems, create comprehensive documentation, and train team " +
						"members while maintaining high network reliability through proactive maintenance and strategic upgrades.",
				},
			},
			{
				Title:  "Core Technology Technician",
				Org:    "Cox Communications",
				Period: "2012 - 2021",
				Notes: []string{
					"Installed and maintained residential broadband services while providing expert troubleshooting " +
						"support, mentoring new technicians, and staying current with emerging technologies to ensure " +
						"optimal service delivery across internet, security, TV, and phone systems.",
				},
			},
		},
		Skills: []SkillSet{
			{
				Key: "backend", Title: "Backend", Description: "I love problem-solving and building complex systems.",
				Icons: []string{"Go", "Python", "Java", "Node.js", "SQL", "SQLite", "REST", "gRPC"},
			},
			{
				Key: "frontend", Title: "Frontend", Description: "I'm passionate about design, animation, and interactions.",
				Icons: []string{"HTML", "CSS", "JavaScript", "React", "React Native", "Tailwind", "HTMX", "GSAP"},
			},
			{
				Key: "devops", Title: "Cloud/DevOps", Description: "I have deployed and managed various applications.",
				Icons: []string{"Docker", "Linux", "AWS", "Vercel", "GitHub Actions", "Nginx", "Grafana", "Bash"},
			},
		},
		Projects: []Project{
			{
				Title: "Portfolio Website",
				Description: "A responsive portfolio website built with Go, Gin and HTMX. The orbital motif, decoding " +
					"text and skills sequence are computed on the server and streamed as SVG.",
				Images:       []string{"/static/images/website.png"},
				Technologies: []string{"Go", "Gin", "HTMX", "Tailwind CSS"},
				PrimaryLink:  "https://jheathcoat.vercel.app/",
				PrimaryText:  "View Project",
				GithubLink:   "https://github.com/Jheathc1/jhWebsite",
			},
			{
				Title: "Island of Shared Meaning",
				Description: "A custom mobile therapy application developed through client consultation and requirement " +
					"analysis. Built with React Native and SQL, providing specialized therapeutic tools and features.",
				Images:       []string{"/static/images/app1.png", "/static/images/app2.png"},
				Technologies: []string{"React Native", "SQL", "Javascript"},
				PrimaryLink:  "https://apps.apple.com/us/app/island-of-shared-meaning/id6738144776",
				PrimaryText:  "View on App Store",
			},
		},
		Footer:     "Thanks for visiting my portfolio!",
		ResumePath: "/static/resume.pdf",
	}
}
