// Mr_Evra | 2025
// dataset.go

package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/mr-evra/portfolio-api/internal/content"
)

func heroSeed() *content.HeroSection {
	return &content.HeroSection{
		ID:        uuid.New().String(),
		FirstName: "Evra",
		LastName:  "DJIGBEGNONHOU",
		Nickname:  "Mr_Evra",
		TitleEn:   "Software Engineer | AI, Security & Fintech Systems",
		TitleFr:   "Ingénieur Logiciel | IA, Sécurité & Systèmes Fintech",
		TaglineEn: "I build intelligent systems that turn data into real-world value.",
		TaglineFr: "Je construis des systèmes intelligents qui transforment les données en valeur réelle.",
		CTATextEn: "View My Work",
		CTATextFr: "Voir Mon Travail",
		CTALink:   "#projects",
		ProfileImage: strPtr("/images/profile.jpg"),
		ResumeURL:    strPtr("/resume.pdf"),
	}
}

func aboutSeed() *content.AboutSection {
	return &content.AboutSection{
		ID:      uuid.New().String(),
		IntroEn: "Building the future, one line of code at a time.",
		IntroFr: "Construire l'avenir, une ligne de code à la fois.",
		DescriptionEn: `I'm Evra DJIGBEGNONHOU, a passionate software engineer specializing in AI, cybersecurity, and fintech solutions. With a strong foundation in full-stack development and a keen interest in emerging technologies, I create robust, scalable systems that solve real-world problems.

My journey in tech is driven by curiosity and a commitment to continuous learning. I thrive on challenges that push the boundaries of what's possible, whether it's developing intelligent algorithms, securing digital infrastructures, or building financial technology platforms.

When I'm not coding, you'll find me exploring new technologies, contributing to open-source projects, or sharing knowledge with the developer community.`,
		DescriptionFr: `Je suis Evra DJIGBEGNONHOU, un ingénieur logiciel passionné spécialisé dans l'IA, la cybersécurité et les solutions fintech. Avec une solide base en développement full-stack et un vif intérêt pour les technologies émergentes, je crée des systèmes robustes et évolutifs qui résolvent des problèmes du monde réel.

Mon parcours dans la tech est motivé par la curiosité et un engagement envers l'apprentissage continu. Je m'épanouis dans les défis qui repoussent les limites du possible, que ce soit développer des algorithmes intelligents, sécuriser des infrastructures numériques ou construire des plateformes de technologie financière.

Quand je ne code pas, vous me trouverez en train d'explorer de nouvelles technologies, de contribuer à des projets open-source ou de partager mes connaissances avec la communauté des développeurs.`,
		YearsExperience:   5,
		ProjectsCompleted: 50,
		ClientsSatisfied:  30,
		Image:             strPtr("/images/about.jpg"),
	}
}

func categorySeeds() []content.SkillCategory {
	return []content.SkillCategory{
		{
			ID:     uuid.New().String(),
			NameEn: "Programming Languages",
			NameFr: "Langages de Programmation",
			Order:  1,
			Icon:   strPtr("Code"),
		},
		{
			ID:     uuid.New().String(),
			NameEn: "Frameworks & Libraries",
			NameFr: "Frameworks & Bibliothèques",
			Order:  2,
			Icon:   strPtr("Layers"),
		},
		{
			ID:     uuid.New().String(),
			NameEn: "Databases & Cloud",
			NameFr: "Bases de Données & Cloud",
			Order:  3,
			Icon:   strPtr("Database"),
		},
		{
			ID:     uuid.New().String(),
			NameEn: "AI & Machine Learning",
			NameFr: "IA & Machine Learning",
			Order:  4,
			Icon:   strPtr("Brain"),
		},
		{
			ID:     uuid.New().String(),
			NameEn: "Security & DevOps",
			NameFr: "Sécurité & DevOps",
			Order:  5,
			Icon:   strPtr("Shield"),
		},
	}
}

type skillSeed struct {
	category int
	nameEn   string
	nameFr   string
	level    int
	order    int
}

func skillSeeds(categories []content.SkillCategory) []content.Skill {
	seeds := []skillSeed{
		{0, "Python", "Python", 95, 1},
		{0, "TypeScript", "TypeScript", 90, 2},
		{0, "JavaScript", "JavaScript", 90, 3},
		{0, "Java", "Java", 85, 4},
		{0, "C++", "C++", 80, 5},
		{0, "Go", "Go", 75, 6},

		{1, "React", "React", 95, 1},
		{1, "Next.js", "Next.js", 95, 2},
		{1, "Node.js", "Node.js", 90, 3},
		{1, "Django", "Django", 90, 4},
		{1, "FastAPI", "FastAPI", 88, 5},
		{1, "Spring Boot", "Spring Boot", 85, 6},

		{2, "PostgreSQL", "PostgreSQL", 90, 1},
		{2, "MongoDB", "MongoDB", 88, 2},
		{2, "Redis", "Redis", 85, 3},
		{2, "AWS", "AWS", 85, 4},
		{2, "Docker", "Docker", 90, 5},
		{2, "Kubernetes", "Kubernetes", 75, 6},

		{3, "TensorFlow", "TensorFlow", 88, 1},
		{3, "PyTorch", "PyTorch", 85, 2},
		{3, "Scikit-learn", "Scikit-learn", 90, 3},
		{3, "OpenAI APIs", "APIs OpenAI", 92, 4},
		{3, "LangChain", "LangChain", 88, 5},
		{3, "Hugging Face", "Hugging Face", 85, 6},

		{4, "OWASP", "OWASP", 85, 1},
		{4, "Penetration Testing", "Tests d'Intrusion", 80, 2},
		{4, "CI/CD", "CI/CD", 90, 3},
		{4, "GitHub Actions", "GitHub Actions", 90, 4},
		{4, "OAuth & JWT", "OAuth & JWT", 92, 5},
		{4, "Encryption", "Chiffrement", 88, 6},
	}

	skills := make([]content.Skill, 0, len(seeds))
	for _, s := range seeds {
		skills = append(skills, content.Skill{
			ID:         uuid.New().String(),
			CategoryID: categories[s.category].ID,
			NameEn:     s.nameEn,
			NameFr:     s.nameFr,
			Level:      s.level,
			Order:      s.order,
		})
	}

	return skills
}

func projectSeeds() []content.Project {
	return []content.Project{
		{
			ID:          uuid.New().String(),
			TitleEn:     "AI-Powered Fraud Detection System",
			TitleFr:     "Système de Détection de Fraude basé sur l'IA",
			ShortDescEn: "Real-time fraud detection using machine learning algorithms",
			ShortDescFr: "Détection de fraude en temps réel utilisant des algorithmes de machine learning",
			DescriptionEn: `Built a comprehensive fraud detection system for a fintech startup that processes over 100,000 transactions daily. The system uses advanced machine learning algorithms to identify suspicious patterns and prevent fraudulent activities in real-time.

Key Features:
- Real-time transaction monitoring and analysis
- Anomaly detection using ensemble learning methods
- Risk scoring system with customizable thresholds
- Administrative dashboard for fraud analysts
- Automated alert system with severity classification
- Integration with payment processing APIs

The system successfully reduced fraud by 87% while maintaining a false positive rate under 2%, saving the company over $2M annually.`,
			DescriptionFr: `J'ai construit un système complet de détection de fraude pour une startup fintech qui traite plus de 100 000 transactions quotidiennes. Le système utilise des algorithmes avancés de machine learning pour identifier les modèles suspects et prévenir les activités frauduleuses en temps réel.

Fonctionnalités Clés:
- Surveillance et analyse de transactions en temps réel
- Détection d'anomalies utilisant des méthodes d'apprentissage d'ensemble
- Système de notation des risques avec seuils personnalisables
- Tableau de bord administratif pour les analystes de fraude
- Système d'alerte automatisé avec classification de gravité
- Intégration avec les APIs de traitement de paiement

Le système a réussi à réduire la fraude de 87% tout en maintenant un taux de faux positifs inférieur à 2%, économisant à l'entreprise plus de 2M$ annuellement.`,
			Role:      "Lead Engineer",
			ImpactEn:  "87% reduction in fraud, $2M+ saved annually, 99.8% uptime, processing 100K+ daily transactions",
			ImpactFr:  "87% de réduction de la fraude, +2M$ économisés annuellement, 99,8% de disponibilité, traitement de +100K transactions quotidiennes",
			TechStack: content.StringList{"Python", "TensorFlow", "FastAPI", "PostgreSQL", "Redis", "Docker", "AWS"},
			GithubURL: strPtr("https://github.com/mr-evra/fraud-detection"),
			Images: content.StringList{
				"/images/projects/fraud-detection-1.jpg",
				"/images/projects/fraud-detection-2.jpg",
			},
			Featured:  true,
			Published: true,
			Order:     1,
			StartDate: datePtr(2023, 1, 15),
			EndDate:   datePtr(2023, 6, 30),
		},
		{
			ID:          uuid.New().String(),
			TitleEn:     "Healthcare Data Platform",
			TitleFr:     "Plateforme de Données de Santé",
			ShortDescEn: "Secure platform for managing patient records with HIPAA compliance",
			ShortDescFr: "Plateforme sécurisée pour gérer les dossiers patients conforme HIPAA",
			DescriptionEn: `Developed a secure, HIPAA-compliant healthcare data platform that enables seamless sharing of patient records between healthcare providers while maintaining strict privacy and security standards.

Technical Implementation:
- End-to-end encryption for all patient data
- Role-based access control (RBAC) system
- Audit logging for compliance tracking
- RESTful API with OAuth 2.0 authentication
- Real-time data synchronization
- Automated backup and disaster recovery

The platform now serves 15+ healthcare facilities, managing records for over 50,000 patients with zero security breaches.`,
			DescriptionFr: `J'ai développé une plateforme sécurisée et conforme HIPAA pour les données de santé qui permet le partage fluide des dossiers patients entre fournisseurs de soins de santé tout en maintenant des normes strictes de confidentialité et de sécurité.

Implémentation Technique:
- Chiffrement de bout en bout pour toutes les données patients
- Système de contrôle d'accès basé sur les rôles (RBAC)
- Journalisation d'audit pour le suivi de conformité
- API RESTful avec authentification OAuth 2.0
- Synchronisation de données en temps réel
- Sauvegarde automatisée et reprise après sinistre

La plateforme dessert maintenant plus de 15 établissements de santé, gérant les dossiers de plus de 50 000 patients sans aucune violation de sécurité.`,
			Role:      "Full-Stack Developer",
			ImpactEn:  "15+ facilities, 50K+ patients, 100% HIPAA compliance, zero security breaches",
			ImpactFr:  "+15 établissements, +50K patients, 100% conformité HIPAA, zéro violation de sécurité",
			TechStack: content.StringList{"Next.js", "TypeScript", "Node.js", "PostgreSQL", "Docker", "AWS", "OAuth"},
			Images: content.StringList{
				"/images/projects/healthcare-1.jpg",
				"/images/projects/healthcare-2.jpg",
			},
			Featured:  true,
			Published: true,
			Order:     2,
			StartDate: datePtr(2023, 7, 1),
			EndDate:   datePtr(2023, 12, 15),
		},
		{
			ID:          uuid.New().String(),
			TitleEn:     "Smart Investment Portfolio Optimizer",
			TitleFr:     "Optimiseur de Portefeuille d'Investissement Intelligent",
			ShortDescEn: "AI-driven investment recommendations using modern portfolio theory",
			ShortDescFr: "Recommandations d'investissement basées sur l'IA utilisant la théorie moderne du portefeuille",
			DescriptionEn: `Created an intelligent investment portfolio optimization tool that uses machine learning and modern portfolio theory to provide personalized investment recommendations based on risk tolerance, investment goals, and market conditions.

Features:
- AI-powered portfolio analysis and rebalancing
- Risk assessment and optimization algorithms
- Real-time market data integration
- Historical performance backtesting
- Tax-loss harvesting suggestions
- Multi-currency support

Used by 5,000+ investors managing over $50M in assets with average returns 15% above market benchmarks.`,
			DescriptionFr: `J'ai créé un outil intelligent d'optimisation de portefeuille d'investissement qui utilise le machine learning et la théorie moderne du portefeuille pour fournir des recommandations d'investissement personnalisées basées sur la tolérance au risque, les objectifs d'investissement et les conditions du marché.

Fonctionnalités:
- Analyse et rééquilibrage de portefeuille alimentés par l'IA
- Algorithmes d'évaluation et d'optimisation des risques
- Intégration de données de marché en temps réel
- Tests historiques de performance
- Suggestions de récolte de pertes fiscales
- Support multi-devises

Utilisé par plus de 5 000 investisseurs gérant plus de 50M$ d'actifs avec des rendements moyens 15% supérieurs aux indices de référence du marché.`,
			Role:      "AI/ML Engineer",
			ImpactEn:  "5,000+ users, $50M+ assets managed, 15% above market returns",
			ImpactFr:  "+5 000 utilisateurs, +50M$ d'actifs gérés, 15% au-dessus des rendements du marché",
			TechStack: content.StringList{"Python", "PyTorch", "React", "Node.js", "MongoDB", "Redis", "Stripe"},
			GithubURL: strPtr("https://github.com/mr-evra/portfolio-optimizer"),
			LiveURL:   strPtr("https://portfoliooptimizer.demo"),
			Images: content.StringList{
				"/images/projects/portfolio-1.jpg",
				"/images/projects/portfolio-2.jpg",
			},
			Featured:  true,
			Published: true,
			Order:     3,
			StartDate: datePtr(2024, 1, 10),
			EndDate:   datePtr(2024, 7, 20),
		},
		{
			ID:          uuid.New().String(),
			TitleEn:     "Cybersecurity Assessment Tool",
			TitleFr:     "Outil d'Évaluation de Cybersécurité",
			ShortDescEn: "Automated security auditing and vulnerability scanning platform",
			ShortDescFr: "Plateforme d'audit de sécurité automatisé et de scan de vulnérabilités",
			DescriptionEn: `Developed a comprehensive cybersecurity assessment tool that automates vulnerability scanning, security audits, and compliance checks for web applications and infrastructure.

Capabilities:
- Automated vulnerability scanning (OWASP Top 10)
- Penetration testing automation
- Compliance checking (GDPR, SOC 2, ISO 27001)
- Security score calculation
- Detailed remediation recommendations
- Integration with CI/CD pipelines

Helped 50+ organizations identify and fix critical vulnerabilities before they could be exploited.`,
			DescriptionFr: `J'ai développé un outil complet d'évaluation de cybersécurité qui automatise le scan de vulnérabilités, les audits de sécurité et les vérifications de conformité pour les applications web et l'infrastructure.

Capacités:
- Scan automatisé de vulnérabilités (OWASP Top 10)
- Automatisation des tests d'intrusion
- Vérification de conformité (RGPD, SOC 2, ISO 27001)
- Calcul du score de sécurité
- Recommandations détaillées de remédiation
- Intégration avec les pipelines CI/CD

A aidé plus de 50 organisations à identifier et corriger des vulnérabilités critiques avant qu'elles ne puissent être exploitées.`,
			Role:      "Security Engineer",
			ImpactEn:  "50+ organizations secured, 500+ vulnerabilities identified and fixed",
			ImpactFr:  "+50 organisations sécurisées, +500 vulnérabilités identifiées et corrigées",
			TechStack: content.StringList{"Python", "Go", "Docker", "Kubernetes", "PostgreSQL", "Elasticsearch"},
			GithubURL: strPtr("https://github.com/mr-evra/security-scanner"),
			Images: content.StringList{
				"/images/projects/security-1.jpg",
				"/images/projects/security-2.jpg",
			},
			Featured:  false,
			Published: true,
			Order:     4,
			StartDate: datePtr(2024, 3, 1),
			EndDate:   datePtr(2024, 9, 15),
		},
		{
			ID:          uuid.New().String(),
			TitleEn:     "E-Commerce Analytics Dashboard",
			TitleFr:     "Tableau de Bord d'Analyse E-Commerce",
			ShortDescEn: "Real-time analytics platform for online retail businesses",
			ShortDescFr: "Plateforme d'analyse en temps réel pour les commerces en ligne",
			DescriptionEn: `Built a powerful analytics dashboard for e-commerce businesses to track sales, customer behavior, inventory, and marketing performance in real-time.

Key Features:
- Real-time sales and revenue tracking
- Customer segmentation and behavior analysis
- Inventory management and forecasting
- Marketing campaign performance metrics
- Customizable reports and exports
- Predictive analytics for demand forecasting

Increased average client revenue by 35% through data-driven insights.`,
			DescriptionFr: `J'ai construit un tableau de bord d'analyse puissant pour les entreprises e-commerce afin de suivre les ventes, le comportement des clients, l'inventaire et les performances marketing en temps réel.

Fonctionnalités Clés:
- Suivi des ventes et revenus en temps réel
- Segmentation et analyse du comportement client
- Gestion et prévision d'inventaire
- Métriques de performance des campagnes marketing
- Rapports personnalisables et exportations
- Analyse prédictive pour la prévision de la demande

A augmenté le revenu client moyen de 35% grâce à des insights basés sur les données.`,
			Role:      "Data Engineer",
			ImpactEn:  "35% revenue increase for clients, processing 1M+ events/day",
			ImpactFr:  "35% d'augmentation du revenu pour les clients, traitement de +1M événements/jour",
			TechStack: content.StringList{"React", "Next.js", "Python", "PostgreSQL", "Redis", "Apache Kafka", "AWS"},
			GithubURL: strPtr("https://github.com/mr-evra/ecommerce-analytics"),
			LiveURL:   strPtr("https://analytics.demo.com"),
			Images: content.StringList{
				"/images/projects/analytics-1.jpg",
				"/images/projects/analytics-2.jpg",
			},
			Featured:  false,
			Published: true,
			Order:     5,
			StartDate: datePtr(2024, 6, 1),
		},
	}
}

func hackathonSeeds() []content.Hackathon {
	return []content.Hackathon{
		{
			ID:            uuid.New().String(),
			NameEn:        "Global Fintech Hackathon 2023",
			NameFr:        "Hackathon Fintech Mondial 2023",
			DescriptionEn: "Developed a decentralized payment platform using blockchain technology that enables instant cross-border transactions with minimal fees. Our solution addressed the challenge of financial inclusion in underbanked regions.",
			DescriptionFr: "Développé une plateforme de paiement décentralisée utilisant la technologie blockchain qui permet des transactions transfrontalières instantanées avec des frais minimes. Notre solution a abordé le défi de l'inclusion financière dans les régions sous-bancarisées.",
			Position:      "Winner",
			Award:         strPtr("1st Place - $10,000"),
			Date:          date(2023, 3, 15),
			Location:      "San Francisco, CA",
			TeamSize:      intPtr(4),
			TechStack:     content.StringList{"Solidity", "Web3.js", "React", "Node.js", "MongoDB"},
			ProjectURL:    strPtr("https://devpost.com/fintech-2023"),
			Image:         strPtr("/images/hackathons/fintech-2023.jpg"),
			Published:     true,
			Order:         1,
		},
		{
			ID:            uuid.New().String(),
			NameEn:        "AI for Good Challenge",
			NameFr:        "Défi IA pour le Bien",
			DescriptionEn: "Created an AI-powered diagnostic tool for early detection of diseases using medical imaging. The tool uses convolutional neural networks to analyze X-rays and CT scans with 94% accuracy.",
			DescriptionFr: "Créé un outil de diagnostic alimenté par l'IA pour la détection précoce de maladies utilisant l'imagerie médicale. L'outil utilise des réseaux de neurones convolutifs pour analyser les radiographies et scans CT avec 94% de précision.",
			Position:      "Runner-up",
			Award:         strPtr("2nd Place - $5,000"),
			Date:          date(2023, 7, 20),
			Location:      "Virtual",
			TeamSize:      intPtr(3),
			TechStack:     content.StringList{"Python", "TensorFlow", "OpenCV", "Flask", "PostgreSQL"},
			ProjectURL:    strPtr("https://github.com/mr-evra/ai-medical-diagnosis"),
			Image:         strPtr("/images/hackathons/ai-good-2023.jpg"),
			Published:     true,
			Order:         2,
		},
		{
			ID:            uuid.New().String(),
			NameEn:        "CyberSecurity CTF Championship",
			NameFr:        "Championnat CTF de Cybersécurité",
			DescriptionEn: "Competed in a 48-hour capture-the-flag cybersecurity competition. Successfully identified and exploited vulnerabilities in web applications, reverse-engineered binaries, and solved cryptographic challenges.",
			DescriptionFr: "Participé à une compétition de cybersécurité capture-the-flag de 48 heures. Identifié et exploité avec succès des vulnérabilités dans des applications web, effectué du reverse engineering sur des binaires et résolu des défis cryptographiques.",
			Position:      "Top 10",
			Award:         strPtr("Top 10 out of 500+ teams"),
			Date:          date(2023, 11, 5),
			Location:      "Boston, MA",
			TeamSize:      intPtr(5),
			TechStack:     content.StringList{"Python", "Bash", "Burp Suite", "Wireshark", "Metasploit"},
			Image:         strPtr("/images/hackathons/ctf-2023.jpg"),
			Published:     true,
			Order:         3,
		},
		{
			ID:            uuid.New().String(),
			NameEn:        "Smart City Innovation Summit",
			NameFr:        "Sommet d'Innovation Smart City",
			DescriptionEn: "Developed an IoT-based traffic management system that uses real-time data from sensors and cameras to optimize traffic flow and reduce congestion by 30% in simulated environments.",
			DescriptionFr: "Développé un système de gestion du trafic basé sur l'IoT qui utilise des données en temps réel provenant de capteurs et caméras pour optimiser le flux de circulation et réduire la congestion de 30% dans des environnements simulés.",
			Position:      "Finalist",
			Award:         strPtr("Best Urban Innovation"),
			Date:          date(2024, 2, 10),
			Location:      "New York, NY",
			TeamSize:      intPtr(4),
			TechStack:     content.StringList{"Python", "MQTT", "PostgreSQL", "React", "Docker", "AWS IoT"},
			ProjectURL:    strPtr("https://github.com/mr-evra/smart-traffic"),
			Image:         strPtr("/images/hackathons/smart-city-2024.jpg"),
			Published:     true,
			Order:         4,
		},
		{
			ID:            uuid.New().String(),
			NameEn:        "Open Source Contribution Sprint",
			NameFr:        "Sprint de Contribution Open Source",
			DescriptionEn: "Participated in a 72-hour open source contribution sprint, submitting multiple pull requests to popular projects including bug fixes, feature implementations, and documentation improvements.",
			DescriptionFr: "Participé à un sprint de contribution open source de 72 heures, soumettant plusieurs pull requests à des projets populaires incluant des corrections de bugs, implémentations de fonctionnalités et améliorations de documentation.",
			Position:      "Top Contributor",
			Award:         strPtr("Most Impactful Contributions"),
			Date:          date(2024, 5, 18),
			Location:      "Virtual",
			TeamSize:      intPtr(1),
			TechStack:     content.StringList{"TypeScript", "React", "Node.js", "Go", "Rust"},
			ProjectURL:    strPtr("https://github.com/mr-evra"),
			Image:         strPtr("/images/hackathons/opensource-2024.jpg"),
			Published:     true,
			Order:         5,
		},
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}
